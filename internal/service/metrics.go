package service

import (
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	decodeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "corrector_decode_total",
		Help: "Decoded words by result",
	}, []string{"result"})
	cacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "corrector_cache_total",
		Help: "Decode cache lookups by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(decodeTotal, cacheTotal)
}

func observe(p hmm.Path) hmm.Path {
	if p.Found() {
		decodeTotal.WithLabelValues("found").Inc()
	} else {
		decodeTotal.WithLabelValues("zero").Inc()
	}
	return p
}
