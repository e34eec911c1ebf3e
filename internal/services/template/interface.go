package template

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/raidtemplate/internal/services/template Service

import "context"

// Service defines the raid template operations. The live template changes
// only through Commit, ResetTemplate and ImportTemplate; edits go to the
// editor's working copy.
type Service interface {
	// GetTemplate returns the live template, deriving it from the roster on first read
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error)

	// GetView returns the editor's working copy while in edit mode, the live template otherwise
	GetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error)

	// EnterEdit starts edit mode with a copy of the live template
	EnterEdit(ctx context.Context, input *EnterEditInput) (*EnterEditOutput, error)

	// SetField applies a field change to the working copy
	SetField(ctx context.Context, input *SetFieldInput) (*SetFieldOutput, error)

	// SetSkill applies a skill change to the working copy
	SetSkill(ctx context.Context, input *SetSkillInput) (*SetSkillOutput, error)

	// Commit replaces the live template with the working copy and leaves edit mode
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)

	// Discard drops the working copy and leaves edit mode
	Discard(ctx context.Context, input *DiscardInput) (*DiscardOutput, error)

	// ResetTemplate derives the live template again from the current roster
	ResetTemplate(ctx context.Context, input *ResetTemplateInput) (*ResetTemplateOutput, error)

	// ExportTemplate returns the live template as JSON
	ExportTemplate(ctx context.Context, input *ExportTemplateInput) (*ExportTemplateOutput, error)

	// ImportTemplate replaces the live template from JSON
	ImportTemplate(ctx context.Context, input *ImportTemplateInput) (*ImportTemplateOutput, error)
}
