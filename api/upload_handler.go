package api

import (
	"io"
	"net/http"

	"github.com/precious1994-dev/APP-PORT/errs"
	"github.com/precious1994-dev/APP-PORT/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxUploadMemory = 8 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
}

func newUploadHandler(store storage.Store) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// upload accepts one multipart asset under the `file` field, validates it
// against the asset-class policy (`kind` field, default image) and persists
// it. Validation failures write nothing; a storage failure surfaces as 500
// with no asset left behind.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart request"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file provided"))
			return
		}
		defer file.Close()

		kind := r.FormValue("kind")
		if kind == "" {
			kind = "image"
		}
		class, ok := storage.ClassFor(kind)
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown upload kind"))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if err := class.Validate(contentType, header.Size); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read upload")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to upload file", err))
			return
		}

		url, err := h.store.Save(r.Context(), class.Filename(contentType), contentType, data)
		if err != nil {
			h.logger.Error().Err(err).Str("kind", kind).Msg("Failed to persist upload")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to upload file", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}
