package http

import (
	"context"
	_ "embed"
	"fmt"

	"setralog/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// OpenAPIDocument returns the embedded OpenAPI 3 description of the REST API.
func OpenAPIDocument() []byte {
	return openAPIDocument
}

// RequestValidator checks incoming requests against the embedded OpenAPI document:
// parameter types, body content type and body schema. Authentication is left to
// Server.Authenticate.
type RequestValidator struct {
	router routers.Router
}

// NewRequestValidator loads and validates the embedded document.
func NewRequestValidator(ctx context.Context) (*RequestValidator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return &RequestValidator{router: router}, nil
}

// Check validates the request in c. Requests for paths the document does not describe
// pass unchecked.
func (v *RequestValidator) Check(c echo.Context) error {
	req := c.Request()
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return nil
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
				return nil
			},
		},
	}
	if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return nil
}

// ValidateRequest is the echo middleware around RequestValidator.Check. It is a no-op
// when the server has no validator.
func (s *Server) ValidateRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.validator != nil {
			if err := s.validator.Check(c); err != nil {
				return s.fail(c, err)
			}
		}
		return next(c)
	}
}

// bindPathParam decodes a simple-style path parameter into dest.
func bindPathParam(c echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}
