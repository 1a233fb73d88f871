package usecase

import (
	"context"
	"io"

	"github.com/openspades/website/internal/core"
)

type ServePageInput struct {
	Config      core.PageConfig
	Method      string
	RequestPath string
}

type ServePageOutput struct {
	Action core.PageAction
	HTML   string
	Error  error
}

type PageService struct{}

func NewPageService() *PageService {
	return &PageService{}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	action := core.DecidePageAction(core.PageRequest{
		Method:      input.Method,
		Pattern:     input.Config.Pattern,
		RequestPath: input.RequestPath,
	})

	if action != core.ActionRender {
		return ServePageOutput{Action: action}
	}

	return s.renderPage(ctx, input.Config)
}

// RenderPage composes a page outside of an HTTP request.
func (s *PageService) RenderPage(ctx context.Context, config core.PageConfig) ServePageOutput {
	return s.renderPage(ctx, config)
}

// WritePage streams a composed page to w. Nothing is written on failure.
func (s *PageService) WritePage(ctx context.Context, w io.Writer, config core.PageConfig) error {
	opts := config.Options
	return core.WritePage(ctx, w, &opts, config.Builder)
}

func (s *PageService) renderPage(ctx context.Context, config core.PageConfig) ServePageOutput {
	opts := config.Options
	html, err := core.RenderPage(ctx, &opts, config.Builder)
	return ServePageOutput{
		Action: core.ActionRender,
		HTML:   html,
		Error:  err,
	}
}
