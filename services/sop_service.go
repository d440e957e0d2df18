package services

import (
	"context"
	"fmt"
	"strings"

	"GenAIStudio/models"
	"GenAIStudio/utils"

	"go.uber.org/zap"
)

const (
	// MaxContextChars bounds the academic and resume text sent to the model.
	MaxContextChars = 3000

	MsgMissingQuestionnaire = "Please upload the SOP questionnaire PDF."
	MsgMissingSOPInputs     = "Please upload all academic documents and fill in study preferences."
)

// DocumentKind is the prompt section an uploaded document feeds.
type DocumentKind int

const (
	AcademicDocument DocumentKind = iota
	ResumeDocument
)

func (k DocumentKind) String() string {
	if k == ResumeDocument {
		return "resume"
	}
	return "academic"
}

// ClassifyDocument routes any filename containing "resume" (any case) to the
// resume section and everything else to the academic section.
func ClassifyDocument(filename string) DocumentKind {
	if strings.Contains(strings.ToLower(filename), "resume") {
		return ResumeDocument
	}
	return AcademicDocument
}

// Truncate keeps the first n characters (runes) of s.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// SOPService turns a questionnaire, supporting documents and preferences into
// a statement of purpose.
type SOPService struct {
	documents  *DocumentService
	completion CompletionClient
	log        *zap.Logger
}

func NewSOPService(documents *DocumentService, completion CompletionClient, log *zap.Logger) *SOPService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SOPService{documents: documents, completion: completion, log: log}
}

// ValidateInputs applies the form's required-field rules.
func ValidateInputs(questionnaire *models.Document, documents []models.Document, prefs models.StudyPreferences) error {
	if err := validateQuestionnaire(questionnaire); err != nil {
		return err
	}
	if len(documents) == 0 || isBlank(prefs.Country) || isBlank(prefs.University) || isBlank(prefs.Course) {
		return utils.NewWarning(MsgMissingSOPInputs)
	}
	return nil
}

func validateQuestionnaire(questionnaire *models.Document) error {
	if questionnaire == nil || len(questionnaire.Data) == 0 {
		return utils.NewWarning(MsgMissingQuestionnaire)
	}
	return nil
}

// PreviewQuestions returns the questions found in a questionnaire without
// generating anything.
func (s *SOPService) PreviewQuestions(questionnaire *models.Document) ([]string, error) {
	if err := validateQuestionnaire(questionnaire); err != nil {
		return nil, err
	}
	questions, err := s.documents.ExtractQuestions(questionnaire.Data)
	if err != nil {
		return nil, fmt.Errorf("questionnaire %q: %w", questionnaire.Name, err)
	}
	return questions, nil
}

// BuildRequest extracts the questions and document text. Any document that
// fails to parse aborts the whole request.
func (s *SOPService) BuildRequest(questionnaire models.Document, documents []models.Document, prefs models.StudyPreferences) (models.SOPRequest, error) {
	questions, err := s.documents.ExtractQuestions(questionnaire.Data)
	if err != nil {
		return models.SOPRequest{}, fmt.Errorf("questionnaire %q: %w", questionnaire.Name, err)
	}

	var academic, resume strings.Builder
	for _, doc := range documents {
		text, err := s.documents.ExtractText(doc.Data)
		if err != nil {
			return models.SOPRequest{}, fmt.Errorf("document %q: %w", doc.Name, err)
		}
		kind := ClassifyDocument(doc.Name)
		s.log.Debug("sop.document.classified",
			zap.String("file", doc.Name),
			zap.Stringer("kind", kind),
			zap.Int("chars", len(text)),
		)
		if kind == ResumeDocument {
			resume.WriteString(text + "\n")
		} else {
			academic.WriteString(text + "\n")
		}
	}

	return models.SOPRequest{
		Questions:        questions,
		AcademicText:     Truncate(academic.String(), MaxContextChars),
		ResumeText:       Truncate(resume.String(), MaxContextChars),
		StudyPreferences: prefs,
	}, nil
}

// Generate runs the full pipeline: validate, extract, assemble, complete.
func (s *SOPService) Generate(ctx context.Context, questionnaire *models.Document, documents []models.Document, prefs models.StudyPreferences) (string, error) {
	if err := ValidateInputs(questionnaire, documents, prefs); err != nil {
		return "", err
	}

	req, err := s.BuildRequest(*questionnaire, documents, prefs)
	if err != nil {
		return "", err
	}

	prompt, err := BuildSOPPrompt(req)
	if err != nil {
		return "", err
	}

	s.log.Info("sop.generate",
		zap.Int("questions", len(req.Questions)),
		zap.Int("documents", len(documents)),
		zap.String("university", prefs.University),
	)
	out, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate sop: %w", err)
	}
	return out, nil
}
