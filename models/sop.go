package models

// SOPFilename is the fixed name of the downloadable statement of purpose.
const SOPFilename = "generated_sop.txt"

// Document is one uploaded file, held in memory for the length of a request.
type Document struct {
	Name string
	Data []byte
}

// StudyPreferences are the free-text fields of the SOP form.
type StudyPreferences struct {
	Country    string `json:"country" form:"country"`
	University string `json:"university" form:"university"`
	Course     string `json:"course" form:"course"`
}

// SOPRequest is everything the SOP prompt is built from.
type SOPRequest struct {
	Questions    []string
	AcademicText string
	ResumeText   string
	StudyPreferences
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

type SOPResponse struct {
	SOP      string `json:"sop"`
	Filename string `json:"filename"`
}

type SOPDownloadRequest struct {
	SOP string `json:"sop" binding:"required"`
}
