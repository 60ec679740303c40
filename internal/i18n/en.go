package i18n

var english = map[string]string{
	"app.title":       "X Post App",
	"app.description": "AI Powered Post Generation and Scheduling Tool",

	"nav.projects":   "Projects",
	"nav.characters": "Author characters",
	"nav.targets":    "Target personas",
	"nav.settings":   "Prompt settings",
	"nav.activity":   "Activity",

	"common.unexpected": "An unexpected error occurred.",
	"common.save":       "Save",
	"common.saving":     "Saving...",
	"common.update":     "Save changes",
	"common.cancel":     "Cancel",
	"common.edit":       "Edit",
	"common.delete":     "Delete",
	"common.unset":      "Not set",
	"common.copy":       "Copy",
	"common.not_found":  "Page not found.",
	"common.bad_form":   "The submitted form is malformed.",
	"common.bad_id":     "Malformed ID.",

	"projects.heading":        "Projects",
	"projects.load_failed":    "Failed to load projects.",
	"projects.empty":          "No projects yet. Create your first one!",
	"projects.delete_confirm": "Really delete project \"%s\"?\nAll of its posts will be deleted too.",
	"projects.delete_failed":  "Failed to delete the project.",
	"projects.deleted":        "Project deleted.",

	"project_form.heading":              "New project",
	"project_form.name":                 "Project name (required)",
	"project_form.url":                  "URL to research (required)",
	"project_form.hashtags":             "Project hashtags",
	"project_form.hashtags_placeholder": "#hashtag1 #hashtag2",
	"project_form.hashtags_hint":        "Separate multiple hashtags with spaces.",
	"project_form.required":             "Enter both a project name and a URL.",
	"project_form.create_failed":        "Failed to create the project.",
	"project_form.submit":               "Create project & start research",
	"project_form.submitting":           "AI is researching...",

	"project.load_failed":       "Failed to load the project.",
	"project.characters_failed": "Failed to load author characters.",
	"project.personas_failed":   "Failed to load target personas.",
	"project.not_found":         "Project not found.",
	"project.error":             "Error: %s",
	"project.edit_meta":         "Edit project details",
	"project.update_failed":     "Failed to update the project details.",

	"summary.heading":     "AI research summary",
	"summary.description": "A summary the AI wrote after researching the URL when the project was created. Editing and saving it improves later generations.",
	"summary.save":        "Save this summary",
	"summary.saved":       "Saved!",
	"summary.save_failed": "Failed to save the summary.",

	"generate.heading":      "AI content generation",
	"generate.character":    "Author character (who writes)",
	"generate.no_character": "No character",
	"generate.target":       "Target (who reads)",
	"generate.no_target":    "No target",
	"generate.language":     "Output language",
	"generate.hint":         "Content is tailored to the selected personas and language.",
	"generate.posts":        "Generate more X post ideas",
	"generate.posts_busy":   "AI is thinking...",
	"generate.note":         "Draft a note article",
	"generate.note_busy":    "AI is writing...",
	"generate.failed":       "AI generation failed.",

	"articles.heading":       "Note articles",
	"article.title":          "Title",
	"article.content":        "Body",
	"article.update_failed":  "Failed to update the article.",
	"article.delete_confirm": "Really delete the article \"%s\"?",
	"article.delete_failed":  "Failed to delete the article.",

	"posts.heading":          "X posts",
	"post.save_failed":       "An error occurred while saving.",
	"post.delete_confirm":    "Really delete this post?",
	"post.delete_failed":     "An error occurred while deleting",
	"post.schedule_heading":  "Choose when to post",
	"post.schedule_submit":   "Schedule for this time",
	"post.scheduling":        "Scheduling...",
	"post.schedule_required": "Choose a date and time.",
	"post.schedule_invalid":  "The date and time are malformed.",
	"post.scheduled":         "Scheduled!",
	"post.schedule_failed":   "An error occurred while scheduling: %s",
	"post.schedule_fallback": "Scheduling failed.",
	"post.post_now_confirm":  "Post this to X right now?",
	"post.posted":            "Posted!",
	"post.post_now_failed":   "An error occurred while posting: %s",
	"post.post_now_fallback": "Posting failed.",
	"post.media_failed":      "Failed to generate media prompts.",
	"post.media_busy":        "AI is writing media prompts...",
	"post.upload_failed":     "Failed to upload the image.",
	"post.uploaded":          "Image attached!",
	"post.upload_draft_only": "Images can only be attached to draft posts.",
	"post.status_posted":     "✓ Posted",
	"post.status_scheduled":  "✓ Scheduled for %s",
	"post.image_alt":         "Attached image",
	"post.image_prompt":      "Image prompt (for Midjourney)",
	"post.video_prompt":      "Video prompt",
	"post.copied":            "Prompt copied!",
	"post.copy_failed":       "Copy failed.",
	"post.image":             "Image",
	"post.ai_prompt":         "AI prompts",
	"post.post":              "Post",
	"post.schedule":          "Schedule",
	"post.metrics":           "%d impressions · %d likes · %d reposts · %d replies",

	"profile.assistant":        "AI persona assistant",
	"profile.seed_placeholder": "Enter keywords...",
	"profile.generate":         "Generate with AI",
	"profile.generating":       "Generating...",
	"profile.seed_required":    "Enter some keywords.",
	"profile.generate_failed":  "AI persona generation failed.",
	"profile.name_required":    "Enter a name.",
	"profile.delete_confirm":   "Really delete \"%s\"?",
	"profile.delete_failed":    "An error occurred while deleting.",

	"characters.heading":        "Author characters",
	"characters.subheading":     "Create and manage the personas that write your posts.",
	"characters.list_heading":   "Characters",
	"characters.load_failed":    "Failed to load characters.",
	"characters.empty":          "No characters yet.",
	"characters.save_failed":    "Failed to save the character.",
	"characters.form_new":       "New character",
	"characters.form_edit":      "Edit character",
	"characters.create":         "Create character",
	"characters.assistant_hint": "Enter keywords for the character (e.g. \"cheerful new PR rep\") and the AI fills in the fields below.",

	"character.field.name":            "1. Name (required)",
	"character.field.title":           "2. Title",
	"character.field.expertise":       "3. Expertise / themes",
	"character.field.background":      "4. Background",
	"character.field.values_beliefs":  "5. Values & beliefs",
	"character.field.goal":            "6. Publishing goal",
	"character.field.base_tone":       "7. Base tone",
	"character.field.catchphrases":    "8. Catchphrases",
	"character.field.style_features":  "9. Style features",
	"character.field.favorite_emojis": "10. Favorite emojis",
	"character.field.impression":      "11. Impression on readers",
	"character.no_title":              "No title",
	"character.short.expertise":       "Expertise",
	"character.short.base_tone":       "Tone",

	"targets.heading":        "Target personas",
	"targets.subheading":     "Create and manage the people your posts should reach.",
	"targets.list_heading":   "Target personas",
	"targets.load_failed":    "Failed to load target personas.",
	"targets.empty":          "No target personas yet.",
	"targets.save_failed":    "Failed to save the persona.",
	"targets.form_new":       "New target persona",
	"targets.form_edit":      "Edit target persona",
	"targets.create":         "Create",
	"targets.assistant_hint": "Enter keywords for the audience (e.g. \"students curious about new tech\") and the AI fills in the fields below.",

	"target.field.name":              "1. Persona name (required)",
	"target.field.challenges":        "2. Challenges & worries",
	"target.field.goals":             "3. Goals",
	"target.field.knowledge_level":   "4. Knowledge level",
	"target.field.info_sources":      "5. Main information sources",
	"target.field.keywords":          "6. Keywords that draw attention",
	"target.field.decision_triggers": "7. Decision triggers",
	"target.short.challenges":        "Challenges",
	"target.short.goals":             "Goals",
	"target.short.knowledge_level":   "Knowledge level",
	"target.short.info_sources":      "Sources",
	"target.short.keywords":          "Keywords",
	"target.short.decision_triggers": "Triggers",

	"settings.heading":          "Prompt settings",
	"settings.subheading":       "Customize the prompts sent to the AI.",
	"settings.load_failed":      "Failed to load settings.",
	"settings.post_prompt":      "X post prompt",
	"settings.post_prompt_hint": "Instructions used when the AI drafts X posts. {...} placeholders are filled in automatically.",
	"settings.note_prompt":      "Note article prompt",
	"settings.note_prompt_hint": "Instructions used when the AI drafts note articles.",
	"settings.save":             "Save settings",
	"settings.saved":            "Settings saved!",
	"settings.post_failed":      "Failed to save the X prompt.",
	"settings.note_failed":      "Failed to save the note prompt.",

	"activity.heading":     "Activity",
	"activity.subheading":  "Changes this console sent to the backend.",
	"activity.load_failed": "Failed to load activity.",
	"activity.empty":       "No activity yet.",
	"activity.tallies":     "Per resource",
	"activity.recent":      "Recent changes",
	"activity.succeeded":   "Succeeded",
	"activity.failed":      "Failed",
	"activity.resource":    "Resource",
	"activity.when":        "When",
	"activity.request":     "Request",
	"activity.status":      "Status",
}
