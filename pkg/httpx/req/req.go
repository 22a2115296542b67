package req

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"league_table/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Read decodes the JSON body into dest and validates it. Bodies cut off by
// http.MaxBytesReader are reported as RequestTooLarge.
func Read(r *http.Request, dest any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return bodyError("io.ReadAll", err)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return Validate(r.Context(), dest)
}

// ParseForm parses the url-encoded form body of r.
func ParseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return bodyError("request.ParseForm", err)
	}

	return nil
}

func bodyError(op string, err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("%s: %w", op, err).Error(),
			failure.WithCode(errcodes.RequestTooLarge),
			failure.WithDescription(fmt.Sprintf("Request body is larger than %d bytes", maxBytesErr.Limit)),
		)
	}

	return failure.NewInvalidArgumentError(
		fmt.Errorf("%s: %w", op, err).Error(),
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription("Invalid request body"),
	)
}

// Validate checks dest against its `validate` struct tags.
func Validate(ctx context.Context, dest any) error {
	if err := validate.StructCtx(ctx, dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
