package controllers

import (
	"fmt"
	"net/http"

	"GenAIStudio/models"
	"GenAIStudio/services"
	"GenAIStudio/utils"

	"github.com/gin-gonic/gin"
)

type SOPController struct {
	SOPService *services.SOPService
}

func NewSOPController(sopService *services.SOPService) *SOPController {
	return &SOPController{SOPService: sopService}
}

// ExtractQuestions previews the questions found in an uploaded questionnaire.
func (c *SOPController) ExtractQuestions(ctx *gin.Context) {
	questionnaire, err := readPDF(ctx, "questionnaire")
	if err != nil {
		ctx.Error(err)
		return
	}

	questions, err := c.SOPService.PreviewQuestions(questionnaire)
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Questions extracted", models.QuestionsResponse{Questions: questions})
}

// GenerateSOP handles the SOP form: questionnaire, supporting documents and preferences.
func (c *SOPController) GenerateSOP(ctx *gin.Context) {
	var prefs models.StudyPreferences
	if err := ctx.ShouldBind(&prefs); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	questionnaire, err := readPDF(ctx, "questionnaire")
	if err != nil {
		ctx.Error(err)
		return
	}

	uploads, err := formFiles(ctx, "documents")
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid document upload"))
		return
	}
	documents := make([]models.Document, 0, len(uploads))
	for _, fh := range uploads {
		if !hasExtension(fh.Filename, "pdf") {
			ctx.Error(utils.NewCustomError(http.StatusBadRequest, fmt.Sprintf("%s is not a PDF document", fh.Filename)))
			return
		}
		doc, err := readDocument(fh)
		if err != nil {
			ctx.Error(err)
			return
		}
		documents = append(documents, doc)
	}

	sop, err := c.SOPService.Generate(ctx.Request.Context(), questionnaire, documents, prefs)
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "SOP Generated Successfully", models.SOPResponse{
		SOP:      sop,
		Filename: models.SOPFilename,
	})
}

// DownloadSOP returns previously generated text as a plain-text attachment.
func (c *SOPController) DownloadSOP(ctx *gin.Context) {
	var req models.SOPDownloadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "SOP text is required")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, models.SOPFilename))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(req.SOP))
}

// readPDF reads an optional single PDF upload.
func readPDF(ctx *gin.Context, field string) (*models.Document, error) {
	fh, err := formFile(ctx, field)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid "+field+" upload")
	}
	if fh == nil {
		return nil, nil
	}
	if !hasExtension(fh.Filename, "pdf") {
		return nil, utils.NewCustomError(http.StatusBadRequest, fmt.Sprintf("%s is not a PDF document", fh.Filename))
	}
	doc, err := readDocument(fh)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
