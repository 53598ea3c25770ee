package models

type ResumeUploadResponse struct {
	ResumeText string `json:"resume_text"`
}

type AskRequest struct {
	ResumeText string `json:"resume_text"`
}

type AskResponse struct {
	Question string `json:"question"`
}

type EvaluateRequest struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

type EvaluateResponse struct {
	Rating   string `json:"rating"`
	Feedback string `json:"feedback"`
}

type PDFUploadResponse struct {
	Message      string `json:"message"`
	UploadedText string `json:"uploaded_text"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type HistoryEntry struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}

type InterviewHistoryResponse struct {
	History []InterviewRecord `json:"history"`
}
