package view

import (
	"context"
	"strings"

	"content_studio/internal/domain"
)

type ProjectForm struct {
	Values domain.ProjectInput
	Error  string
}

// ProjectsPage is the home page: the project list and the create form.
type ProjectsPage struct {
	Feedback
	env *Env
	api ProjectAPI

	Projects []*domain.Project
	Form     ProjectForm
}

func NewProjectsPage(env *Env, api ProjectAPI) *ProjectsPage {
	return &ProjectsPage{env: env, api: api}
}

func (p *ProjectsPage) Load(ctx context.Context) error {
	projects, err := p.api.ListProjects(ctx)
	if err != nil {
		p.env.logFailure("projects.list", err)
		p.Error = describe(err, p.env.L.T("projects.load_failed"))
		return err
	}
	p.Projects = Pointers(projects)
	return nil
}

// Create returns the new project so the caller can open it.
func (p *ProjectsPage) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, bool) {
	p.Form = ProjectForm{Values: in}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.URL) == "" {
		p.Form.Error = p.env.L.T("project_form.required")
		return nil, false
	}

	project, err := p.api.CreateProject(ctx, in)
	if err != nil {
		p.env.logFailure("projects.create", err)
		p.Form.Error = describe(err, p.env.L.T("project_form.create_failed"))
		return nil, false
	}
	p.Projects = Appended(p.Projects, project)
	p.Form = ProjectForm{}
	return project, true
}

func (p *ProjectsPage) Delete(ctx context.Context, id int64, confirm Confirm) bool {
	project, ok := Find(p.Projects, id)
	if !ok {
		return false
	}
	if !confirm(p.env.L.T("projects.delete_confirm", project.Name)) {
		return false
	}

	if err := p.api.DeleteProject(ctx, id); err != nil {
		p.env.logFailure("projects.delete", err)
		p.Alert(describe(err, p.env.L.T("projects.delete_failed")))
		return false
	}
	p.Projects = Removed(p.Projects, id)
	p.Alert(p.env.L.T("projects.deleted"))
	return true
}
