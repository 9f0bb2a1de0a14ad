package run

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	messagesCounterVec      *prometheus.CounterVec
	sentMessagesCounter     prometheus.Counter
	failedMessagesCounter   prometheus.Counter
	excludedMessagesCounter prometheus.Counter
)

func init() {
	opts := prometheus.CounterOpts{}
	opts.Name = "slogsyslog_messages_total"
	opts.Help = "Numbers of messages processed by send"
	messagesCounterVec = prometheus.NewCounterVec(opts, []string{"status"})
	prometheus.MustRegister(messagesCounterVec)

	sentMessagesCounter = messagesCounterVec.WithLabelValues("sent")
	failedMessagesCounter = messagesCounterVec.WithLabelValues("failed")
	excludedMessagesCounter = messagesCounterVec.WithLabelValues("excluded")
}
