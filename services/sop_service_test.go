package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"GenAIStudio/models"
	"GenAIStudio/utils"
	"GenAIStudio/utils/pdftest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		filename string
		want     DocumentKind
	}{
		{"resume.pdf", ResumeDocument},
		{"John_RESUME_2024.pdf", ResumeDocument},
		{"my-Resume.PDF", ResumeDocument},
		{"resumes_all.pdf", ResumeDocument},
		{"10th_marksheet.pdf", AcademicDocument},
		{"cv.pdf", AcademicDocument},
		{"", AcademicDocument},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDocument(tt.filename))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"shorter", strings.Repeat("a", 2999), 2999},
		{"exact", strings.Repeat("a", 3000), 3000},
		{"longer", strings.Repeat("a", 3001), 3000},
		{"much longer", strings.Repeat("ab", 5000), 3000},
		{"multibyte", strings.Repeat("é", 4000), 3000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, MaxContextChars)
			assert.Equal(t, tt.want, len([]rune(got)))
			assert.True(t, strings.HasPrefix(tt.in, got))
		})
	}

	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ab", Truncate("abc", 2))
}

func newTestSOPService(t *testing.T, fake *fakeCompletion) *SOPService {
	t.Helper()
	return NewSOPService(newTestDocumentService(t), fake, nil)
}

var testPrefs = models.StudyPreferences{Country: "Canada", University: "UofT", Course: "MSc CS"}

func TestBuildRequest(t *testing.T) {
	svc := newTestSOPService(t, &fakeCompletion{})

	questionnaire := models.Document{Name: "questions.pdf", Data: pdftest.Build([]string{"Why this course?", "Name:"})}
	docs := []models.Document{
		{Name: "10th.pdf", Data: pdftest.Build([]string{"Grade 10: A"})},
		{Name: "Resume.pdf", Data: pdftest.Build([]string{"Intern at Acme"})},
		{Name: "12th.pdf", Data: pdftest.Build([]string{"Grade 12: A+"})},
	}

	req, err := svc.BuildRequest(questionnaire, docs, testPrefs)
	require.NoError(t, err)

	assert.Equal(t, []string{"Why this course?"}, req.Questions)
	assert.Equal(t, "Grade 10: A\nGrade 12: A+\n", req.AcademicText)
	assert.Equal(t, "Intern at Acme\n", req.ResumeText)
	assert.Equal(t, testPrefs, req.StudyPreferences)
}

func TestBuildRequestTruncatesBuckets(t *testing.T) {
	svc := newTestSOPService(t, &fakeCompletion{})

	long := strings.Repeat("x", 80)
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = long
	}
	docs := []models.Document{
		{Name: "transcript.pdf", Data: pdftest.Build(lines)},
		{Name: "resume.pdf", Data: pdftest.Build(lines)},
	}

	req, err := svc.BuildRequest(models.Document{Name: "q.pdf", Data: pdftest.Build([]string{"Why?"})}, docs, testPrefs)
	require.NoError(t, err)
	assert.Len(t, []rune(req.AcademicText), MaxContextChars)
	assert.Len(t, []rune(req.ResumeText), MaxContextChars)
}

func TestBuildRequestParseFailure(t *testing.T) {
	svc := newTestSOPService(t, &fakeCompletion{})

	docs := []models.Document{{Name: "broken.pdf", Data: []byte("not a pdf at all")}}
	_, err := svc.BuildRequest(models.Document{Name: "q.pdf", Data: pdftest.Build([]string{"Why?"})}, docs, testPrefs)
	assert.ErrorIs(t, err, ErrDocumentParse)
	assert.Contains(t, err.Error(), "broken.pdf")
}

func TestGenerateSOP(t *testing.T) {
	fake := &fakeCompletion{reply: "Dear Admissions Committee"}
	svc := newTestSOPService(t, fake)

	questionnaire := &models.Document{Name: "q.pdf", Data: pdftest.Build([]string{"What are your goals?"})}
	docs := []models.Document{{Name: "degree.pdf", Data: pdftest.Build([]string{"BSc Physics"})}}

	out, err := svc.Generate(context.Background(), questionnaire, docs, testPrefs)
	require.NoError(t, err)
	assert.Equal(t, "Dear Admissions Committee", out)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "What are your goals?")
	assert.Contains(t, fake.prompts[0], "BSc Physics")
	assert.Contains(t, fake.prompts[0], "University: UofT")
}

func TestGenerateSOPValidation(t *testing.T) {
	questionnaire := &models.Document{Name: "q.pdf", Data: pdftest.Build([]string{"Why?"})}
	docs := []models.Document{{Name: "degree.pdf", Data: pdftest.Build([]string{"BSc"})}}

	tests := []struct {
		name          string
		questionnaire *models.Document
		docs          []models.Document
		prefs         models.StudyPreferences
		want          string
	}{
		{"no questionnaire", nil, docs, testPrefs, MsgMissingQuestionnaire},
		{"empty questionnaire", &models.Document{Name: "q.pdf"}, docs, testPrefs, MsgMissingQuestionnaire},
		{"no documents", questionnaire, nil, testPrefs, MsgMissingSOPInputs},
		{"no country", questionnaire, docs, models.StudyPreferences{University: "UofT", Course: "CS"}, MsgMissingSOPInputs},
		{"no course", questionnaire, docs, models.StudyPreferences{Country: "Canada", University: "UofT"}, MsgMissingSOPInputs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompletion{}
			svc := newTestSOPService(t, fake)

			_, err := svc.Generate(context.Background(), tt.questionnaire, tt.docs, tt.prefs)
			var warn *utils.CustomError
			require.True(t, errors.As(err, &warn))
			assert.Equal(t, tt.want, warn.Message)
			assert.Empty(t, fake.prompts)
		})
	}
}

func TestPreviewQuestions(t *testing.T) {
	fake := &fakeCompletion{}
	svc := newTestSOPService(t, fake)

	got, err := svc.PreviewQuestions(&models.Document{
		Name: "q.pdf",
		Data: pdftest.BuildWith(pdftest.MoveText, []string{"Name:", "1. Why this course?", "Signature"}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1. Why this course?"}, got)
	assert.Empty(t, fake.prompts)

	for _, doc := range []*models.Document{nil, {Name: "q.pdf"}} {
		_, err := svc.PreviewQuestions(doc)
		var warn *utils.CustomError
		require.True(t, errors.As(err, &warn))
		assert.Equal(t, http.StatusBadRequest, warn.StatusCode)
		assert.Equal(t, MsgMissingQuestionnaire, warn.Message)
	}

	_, err = svc.PreviewQuestions(&models.Document{Name: "bad.pdf", Data: []byte("not a pdf")})
	assert.ErrorIs(t, err, ErrDocumentParse)
}
