package generate

import (
	"errors"
	"strings"

	apperrors "codeberg.org/licitgov/server/internal/errors"
)

const configurationErrorMessage = "Erro de configuração: verifique sua chave de API."

// ClassifyError maps a generation failure to an error code and the
// user-facing message. Errors whose text references the API key are
// configuration problems; everything else is a generic generation error.
func ClassifyError(err error) (code string, message string) {
	if errors.Is(err, ErrMissingObjectDescription) || errors.Is(err, ErrUnknownDocumentType) {
		return apperrors.CodeValidationError, err.Error()
	}

	if strings.Contains(err.Error(), "API_KEY") {
		return apperrors.CodeConfigurationError, configurationErrorMessage
	}

	return apperrors.CodeGenerationFailed, "Erro: " + err.Error()
}
