package service

// WorkflowMetrics records business events of the portal workflows.
type WorkflowMetrics interface {
	ApplicationCreated()
	ApplicationSubmitted()
	DocumentUploaded(verified bool)
	SignatureAdded()
	ReminderSent()
	NotificationPublished(kind EmailKind, err error)
}
