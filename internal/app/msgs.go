package app

import (
	"ragtui/internal/backend"
	"ragtui/internal/upload"
)

// Internal message types for the app. Each network command resolves to
// exactly one of these; the session store is mutated when the message
// is applied in Update, never inside the command goroutine.

type pdfUploadedMsg struct {
	staged *upload.StagedPDF
}

type videoUploadedMsg struct {
	staged *upload.StagedVideo
}

type uploadFailedMsg struct {
	err error
}

type queryResultMsg struct {
	result *backend.QueryResult
}

type queryFailedMsg struct {
	err error
}
