package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/hmm-ocr-corrector/internal/api"
	"github.com/airenas/hmm-ocr-corrector/internal/db"
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

const maxWords = 1000

func correct(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		var req api.CorrectRequest
		if err := c.Bind(&req); err != nil {
			goapp.Log.Error().Err(err).Msg("can't decode request")
			return echo.NewHTTPError(http.StatusBadRequest, "can't decode request")
		}
		words := append(strings.Fields(req.Text), req.Words...)
		if len(words) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "no words")
		}
		if len(words) > maxWords {
			return echo.NewHTTPError(http.StatusBadRequest, "too many words")
		}
		res := &api.CorrectResponse{ID: ulid.Make().String(), Results: make([]api.WordResult, 0, len(words))}
		for _, w := range words {
			res.Results = append(res.Results, decodeWord(c.Request().Context(), data, w))
		}
		goapp.Log.Debug().Str("id", res.ID).Int("words", len(words)).Msg("corrected")
		return c.JSON(http.StatusOK, res)
	}
}

// decodeWord returns the OCR word itself as a best effort result when no path explains it
func decodeWord(ctx context.Context, data *Data, word string) api.WordResult {
	p := cachedDecode(ctx, data, word)
	res := api.WordResult{Word: word, Corrected: p.Word, Prob: p.Prob}
	if !p.Found() {
		res.Corrected = word
		res.ZeroProb = true
	}
	return res
}

func cachedDecode(ctx context.Context, data *Data, word string) hmm.Path {
	if data.Cache == nil {
		return observe(data.Decoder.Decode(word))
	}
	key := db.Key(data.Model.Fingerprint, word)
	p, ok, err := data.Cache.Get(ctx, key)
	if err != nil {
		goapp.Log.Warn().Err(err).Str("key", key).Msg("cache get")
	} else if ok {
		cacheTotal.WithLabelValues("hit").Inc()
		return p
	}
	cacheTotal.WithLabelValues("miss").Inc()
	p = observe(data.Decoder.Decode(word))
	if err := data.Cache.Set(ctx, key, p); err != nil {
		goapp.Log.Warn().Err(err).Str("key", key).Msg("cache set")
	}
	return p
}
