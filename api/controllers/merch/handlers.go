package merch

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/merchlab/storefront-modal-api/api/responses"
	"github.com/merchlab/storefront-modal-api/api/validators"
	"github.com/merchlab/storefront-modal-api/internal/cart"
	"github.com/merchlab/storefront-modal-api/internal/catalog"
	merchsvc "github.com/merchlab/storefront-modal-api/internal/merch"
	pagesvc "github.com/merchlab/storefront-modal-api/internal/page"
	pkgerrors "github.com/merchlab/storefront-modal-api/pkg/errors"
	"github.com/merchlab/storefront-modal-api/pkg/logger"
)

// SessionOpen opens a modal session for the requested product handle.
func SessionOpen(svc merchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "merch service unavailable"))
			return
		}

		var payload OpenSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Open(r.Context(), payload.Handle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapWorkflowError(err))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// SessionSubmit resolves the selection and performs the cart submission.
func SessionSubmit(svc merchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "merch service unavailable"))
			return
		}

		token := chi.URLParam(r, "token")
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session token required"))
			return
		}

		var payload SubmitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selection, err := toSelection(payload.Selection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := svc.Submit(r.Context(), token, selection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapWorkflowError(err))
			return
		}

		responses.WriteSuccess(w, outcome)
	}
}

// SessionClose invalidates a modal session.
func SessionClose(svc merchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "merch service unavailable"))
			return
		}

		token := chi.URLParam(r, "token")
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session token required"))
			return
		}

		svc.Close(token)
		responses.WriteSuccess(w, map[string]string{"status": "closed"})
	}
}

// Page returns the banner and featured product grid payload.
func Page(svc pagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "page service unavailable"))
			return
		}

		payload, err := svc.Page(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapWorkflowError(err))
			return
		}

		responses.WriteSuccess(w, payload)
	}
}

// mapWorkflowError translates domain errors into coded API errors. The user
// sees one message per failure; the distinctions feed logging only.
func mapWorkflowError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
	case errors.Is(err, merchsvc.ErrSessionNotFound), errors.Is(err, merchsvc.ErrSessionClosed):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "modal session not found")
	case errors.Is(err, merchsvc.ErrIncompleteSelection):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "please choose a value for every option")
	}

	var subErr *cart.SubmissionError
	if errors.As(err, &subErr) {
		return pkgerrors.Wrap(pkgerrors.CodeUpstreamRejected, err, "cart rejected the submission").
			WithDetails(map[string]any{"status": subErr.Status, "body": subErr.Body})
	}
	if catalog.IsTransport(err) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storefront platform unreachable")
	}
	return err
}
