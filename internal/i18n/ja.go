package i18n

var japanese = map[string]string{
	"app.title":       "X Post App",
	"app.description": "AI Powered Post Generation and Scheduling Tool",

	"nav.projects":   "プロジェクト",
	"nav.characters": "投稿者キャラクター",
	"nav.targets":    "ターゲットペルソナ",
	"nav.settings":   "プロンプト設定",
	"nav.activity":   "アクティビティ",

	"common.unexpected": "予期せぬエラーが発生しました。",
	"common.save":       "保存",
	"common.saving":     "保存中...",
	"common.update":     "更新を保存",
	"common.cancel":     "キャンセル",
	"common.edit":       "編集",
	"common.delete":     "削除",
	"common.unset":      "未設定",
	"common.copy":       "コピー",
	"common.not_found":  "ページが見つかりませんでした。",
	"common.bad_form":   "入力内容の形式が正しくありません。",
	"common.bad_id":     "IDの形式が正しくありません。",

	"projects.heading":        "プロジェクト一覧",
	"projects.load_failed":    "プロジェクト一覧の取得に失敗しました。",
	"projects.empty":          "まだプロジェクトがありません。最初のプロジェクトを作成しましょう！",
	"projects.delete_confirm": "プロジェクト「%s」を本当に削除しますか？\n関連するすべてのポストも削除されます。",
	"projects.delete_failed":  "プロジェクトの削除に失敗しました。",
	"projects.deleted":        "プロジェクトを削除しました。",

	"project_form.heading":              "新規プロジェクト作成",
	"project_form.name":                 "プロジェクト名 (必須)",
	"project_form.url":                  "調査対象のURL (必須)",
	"project_form.hashtags":             "プロジェクト用ハッシュタグ",
	"project_form.hashtags_placeholder": "#ハッシュタグ1 #ハッシュタグ2",
	"project_form.hashtags_hint":        "スペースで区切って複数入力できます。",
	"project_form.required":             "プロジェクト名とURLの両方を入力してください。",
	"project_form.create_failed":        "プロジェクトの作成に失敗しました。",
	"project_form.submit":               "プロジェクトを作成＆調査開始",
	"project_form.submitting":           "AIが調査中...",

	"project.load_failed":       "プロジェクトの取得に失敗しました。",
	"project.characters_failed": "投稿者キャラクター一覧の取得に失敗しました。",
	"project.personas_failed":   "ターゲットペルソナ一覧の取得に失敗しました。",
	"project.not_found":         "プロジェクトが見つかりませんでした。",
	"project.error":             "エラー: %s",
	"project.edit_meta":         "プロジェクト情報を編集",
	"project.update_failed":     "プロジェクト情報の更新に失敗しました。",

	"summary.heading":     "AIによる調査結果サマリー",
	"summary.description": "プロジェクト作成時にAIがURLを調査して作成した要約です。この内容を編集して保存すると、以降のAIによるコンテンツ生成の精度が向上します。",
	"summary.save":        "このサマリーを保存",
	"summary.saved":       "保存しました！",
	"summary.save_failed": "サマリーの保存に失敗しました。",

	"generate.heading":      "AIコンテンツ生成",
	"generate.character":    "投稿者キャラクター (誰が)",
	"generate.no_character": "キャラクターなし",
	"generate.target":       "ターゲット (誰に)",
	"generate.no_target":    "ターゲットなし",
	"generate.language":     "生成言語",
	"generate.hint":         "ペルソナや言語を選択すると、それに合わせた内容が生成されます。",
	"generate.posts":        "Xのポスト案を追加生成",
	"generate.posts_busy":   "AIが考え中...",
	"generate.note":         "noteの記事案を作成する",
	"generate.note_busy":    "AIが執筆中...",
	"generate.failed":       "AIの生成に失敗しました。",

	"articles.heading":       "note記事一覧・編集",
	"article.title":          "タイトル",
	"article.content":        "本文",
	"article.update_failed":  "記事の更新に失敗しました。",
	"article.delete_confirm": "この記事「%s」を本当に削除しますか？",
	"article.delete_failed":  "記事の削除に失敗しました。",

	"posts.heading":          "Xポスト一覧・編集",
	"post.save_failed":       "保存中にエラーが発生しました。",
	"post.delete_confirm":    "このポストを本当に削除しますか？",
	"post.delete_failed":     "削除中にエラーが発生しました",
	"post.schedule_heading":  "投稿日時を選択",
	"post.schedule_submit":   "この日時に予約する",
	"post.scheduling":        "設定中...",
	"post.schedule_required": "予約日時を選択してください。",
	"post.schedule_invalid":  "予約日時の形式が正しくありません。",
	"post.scheduled":         "予約が完了しました！",
	"post.schedule_failed":   "予約中にエラーが発生しました: %s",
	"post.schedule_fallback": "予約に失敗しました。",
	"post.post_now_confirm":  "この内容で今すぐXに投稿しますか？",
	"post.posted":            "投稿に成功しました！",
	"post.post_now_failed":   "投稿中にエラーが発生しました: %s",
	"post.post_now_fallback": "投稿に失敗しました。",
	"post.media_failed":      "メディアプロンプトの生成に失敗しました。",
	"post.media_busy":        "メディア用プロンプトをAIが生成中です...",
	"post.upload_failed":     "画像のアップロードに失敗しました。",
	"post.uploaded":          "画像が添付されました！",
	"post.upload_draft_only": "画像は下書きのポストにのみ添付できます。",
	"post.status_posted":     "✓ 投稿済み",
	"post.status_scheduled":  "✓ %s に予約済み",
	"post.image_alt":         "添付画像",
	"post.image_prompt":      "画像生成プロンプト (Midjourney用)",
	"post.video_prompt":      "動画生成プロンプト",
	"post.copied":            "プロンプトをコピーしました！",
	"post.copy_failed":       "コピーに失敗しました。",
	"post.image":             "画像",
	"post.ai_prompt":         "AIプロンプト",
	"post.post":              "投稿",
	"post.schedule":          "予約",
	"post.metrics":           "インプレッション %d ・ いいね %d ・ リポスト %d ・ 返信 %d",

	"profile.assistant":        "AIペルソナアシスタント",
	"profile.seed_placeholder": "キーワードを入力...",
	"profile.generate":         "AIで生成",
	"profile.generating":       "生成中...",
	"profile.seed_required":    "キーワードを入力してください。",
	"profile.generate_failed":  "AIによるペルソナ生成に失敗しました。",
	"profile.name_required":    "名前を入力してください。",
	"profile.delete_confirm":   "「%s」を本当に削除しますか？",
	"profile.delete_failed":    "削除中にエラーが発生しました。",

	"characters.heading":        "投稿者キャラクター管理",
	"characters.subheading":     "投稿者となるペルソナを作成・管理します。",
	"characters.list_heading":   "作成済みキャラクター一覧",
	"characters.load_failed":    "キャラクター一覧の取得に失敗しました。",
	"characters.empty":          "まだキャラクターが作成されていません。",
	"characters.save_failed":    "キャラクターの保存に失敗しました。",
	"characters.form_new":       "新規キャラクター作成",
	"characters.form_edit":      "キャラクター編集",
	"characters.create":         "キャラクターを作成",
	"characters.assistant_hint": "キャラクターのキーワード（例：「明るく元気な新人広報担当」）を入力してボタンを押すと、AIが以下の詳細項目を自動で生成します。",

	"character.field.name":            "1. 名前 (必須)",
	"character.field.title":           "2. 肩書",
	"character.field.expertise":       "3. 専門分野・テーマ",
	"character.field.background":      "4. ペルソナの背景",
	"character.field.values_beliefs":  "5. 価値観・信念",
	"character.field.goal":            "6. 発信活動の目標",
	"character.field.base_tone":       "7. 口調の基本",
	"character.field.catchphrases":    "8. 口癖・決め台詞",
	"character.field.style_features":  "9. 文体の特徴",
	"character.field.favorite_emojis": "10. よく使う絵文字",
	"character.field.impression":      "11. 読者に与えたい印象",
	"character.no_title":              "肩書未設定",
	"character.short.expertise":       "専門分野",
	"character.short.base_tone":       "口調",

	"targets.heading":        "ターゲットペルソナ管理",
	"targets.subheading":     "投稿を届けたい相手の人物像を作成・管理します。",
	"targets.list_heading":   "作成済みターゲットペルソナ一覧",
	"targets.load_failed":    "ターゲットペルソナ一覧の取得に失敗しました。",
	"targets.empty":          "まだターゲットペルソナが作成されていません。",
	"targets.save_failed":    "ペルソナの保存に失敗しました。",
	"targets.form_new":       "新規ターゲットペルソナ作成",
	"targets.form_edit":      "ターゲットペルソナ編集",
	"targets.create":         "作成",
	"targets.assistant_hint": "ターゲットのキーワード（例：「新しい技術に興味がある大学生」）を入力してボタンを押すと、AIが以下の詳細項目を自動で生成します。",

	"target.field.name":              "1. ペルソナ名 (必須)",
	"target.field.challenges":        "2. 抱えている課題・悩み",
	"target.field.goals":             "3. 達成したいこと",
	"target.field.knowledge_level":   "4. 知識レベル",
	"target.field.info_sources":      "5. 主な情報源",
	"target.field.keywords":          "6. 関心を引くキーワード",
	"target.field.decision_triggers": "7. 行動の決め手",
	"target.short.challenges":        "課題",
	"target.short.goals":             "目標",
	"target.short.knowledge_level":   "知識レベル",
	"target.short.info_sources":      "情報源",
	"target.short.keywords":          "キーワード",
	"target.short.decision_triggers": "決め手",

	"settings.heading":          "プロンプト設定",
	"settings.subheading":       "AIに指示するプロンプトをカスタマイズします。",
	"settings.load_failed":      "設定の読み込みに失敗しました。",
	"settings.post_prompt":      "Xのポスト用プロンプト",
	"settings.post_prompt_hint": "AIがXのポスト案を生成する際の指示書です。{...}の部分は、実際の情報に自動で置き換えられます。",
	"settings.note_prompt":      "noteの記事用プロンプト",
	"settings.note_prompt_hint": "AIがnoteの記事案を生成する際の指示書です。",
	"settings.save":             "設定を保存",
	"settings.saved":            "設定を保存しました！",
	"settings.post_failed":      "X用プロンプトの保存に失敗しました。",
	"settings.note_failed":      "note用プロンプトの保存に失敗しました。",

	"activity.heading":     "アクティビティ",
	"activity.subheading":  "このコンソールから送信した変更操作の履歴です。",
	"activity.load_failed": "アクティビティの取得に失敗しました。",
	"activity.empty":       "まだ操作履歴がありません。",
	"activity.tallies":     "リソース別の集計",
	"activity.recent":      "最近の操作",
	"activity.succeeded":   "成功",
	"activity.failed":      "失敗",
	"activity.resource":    "リソース",
	"activity.when":        "日時",
	"activity.request":     "リクエスト",
	"activity.status":      "ステータス",
}
