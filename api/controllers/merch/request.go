package merch

import (
	"strconv"

	"github.com/merchlab/storefront-modal-api/internal/catalog"
	pkgerrors "github.com/merchlab/storefront-modal-api/pkg/errors"
)

// OpenSessionRequest opens the modal for one product.
type OpenSessionRequest struct {
	Handle string `json:"handle" validate:"required,max=255"`
}

// SubmitRequest carries the live selection map keyed by option position.
type SubmitRequest struct {
	Selection map[string]string `json:"selection" validate:"required"`
}

func toSelection(raw map[string]string) (catalog.Selection, error) {
	selection := make(catalog.Selection, len(raw))
	for key, value := range raw {
		position, err := strconv.Atoi(key)
		if err != nil || position < 1 || position > catalog.MaxOptionPositions {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "selection keys must be option positions 1-3").
				WithDetails(map[string]string{"key": key})
		}
		selection[position] = value
	}
	return selection, nil
}
