package misc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Run results
const (
	RunOK       = "ok"
	RunCollect  = "collect"
	RunGenerate = "generate"
)

var pusher *push.Pusher

// TaskErrors counts errors by name
var TaskErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "job_search_buddy_errors",
}, []string{"error"})

// RunResults counts finished runs by result
var RunResults = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "job_search_buddy_runs",
}, []string{"result"})

// LinkCount is the size of the last link collection
var LinkCount = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "job_search_buddy_links",
})

// InitMetrics enables pushing to the Pushgateway at url, an empty url keeps it disabled
func InitMetrics(url, job string) {
	if url == "" {
		return
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(TaskErrors, RunResults, LinkCount)
	pusher = push.New(url, job).Gatherer(registry)
}

// ObserveLinks records the size of a link collection
func ObserveLinks(count int) {
	LinkCount.Set(float64(count))
}

// ObserveRun records how a run finished
func ObserveRun(result string) {
	RunResults.With(prometheus.Labels{"result": result}).Inc()
}

// PushMetrics pushes and resets the counters, a no-op until InitMetrics got an url
func PushMetrics() {
	if pusher == nil {
		return
	}
	if err := pusher.Push(); err != nil {
		L.Logf("ERROR could not push to Pushgateway, %v", err)
	}
	TaskErrors.Reset()
	RunResults.Reset()
}

func countError(name string) {
	TaskErrors.With(prometheus.Labels{"error": name}).Inc()
}
