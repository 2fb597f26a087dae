package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pressmark", Name: "posts_created_total", Help: "Number of blog posts created."},
	)
	PostsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pressmark", Name: "posts_updated_total", Help: "Number of blog post updates."},
	)
	PostsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pressmark", Name: "posts_deleted_total", Help: "Number of blog posts deleted."},
	)
	ImageUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pressmark", Name: "image_uploads_total", Help: "Image upload outcomes."},
		[]string{"outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pressmark", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pressmark", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PostsCreated, PostsUpdated, PostsDeleted, ImageUploads, RateLimitAllowed, RateLimitRejected)
}
