package quotes

import (
	"net/http"

	quotesdto "github.com/angelmondragon/quotation-service/api/controllers/quotes/dto"
	"github.com/angelmondragon/quotation-service/api/responses"
	"github.com/angelmondragon/quotation-service/api/validators"
	quotesvc "github.com/angelmondragon/quotation-service/internal/quotes"
	pkgerrors "github.com/angelmondragon/quotation-service/pkg/errors"
	"github.com/angelmondragon/quotation-service/pkg/logger"
)

// CreateQuote prices the requested items and returns the quotation with its
// email draft.
func CreateQuote(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload quotesdto.QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.CreateQuote(r.Context(), toQuoteRequest(payload))
		if err != nil {
			if pkgerrors.As(err) == nil {
				err = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "quote generation failed")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}
