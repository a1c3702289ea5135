package response

import "time"

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)
