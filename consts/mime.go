package consts

const (
	MIMETextPlain = "text/plain"
	MIMEHTML      = "text/html"
)
