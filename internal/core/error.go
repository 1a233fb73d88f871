package core

import (
	"errors"
	"html/template"
)

const MissingCompositionMessage = "Body not provided"

var (
	ErrMissingComposition = errors.New(MissingCompositionMessage)
	ErrCompositionOrder   = errors.New("composition used out of order")
)

// CompositionError reports which half of a composition was never supplied.
// It prints the same diagnostic regardless.
type CompositionError struct {
	Missing string
}

func (e *CompositionError) Error() string {
	return MissingCompositionMessage
}

func (e *CompositionError) Unwrap() error {
	return ErrMissingComposition
}

func checkComposition(hasOptions, hasFragment bool) error {
	switch {
	case !hasOptions && !hasFragment:
		return &CompositionError{Missing: "options and fragment"}
	case !hasOptions:
		return &CompositionError{Missing: "options"}
	case !hasFragment:
		return &CompositionError{Missing: "fragment"}
	}
	return nil
}

type ErrorData struct {
	Message string
	IsDev   bool
}

var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Error` + SiteSuffix + `</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Internal Server Error</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>An error occurred while processing your request.</p>
    {{end}}
</body>
</html>`))
