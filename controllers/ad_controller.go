package controllers

import (
	"net/http"

	"GenAIStudio/models"
	"GenAIStudio/services"
	"GenAIStudio/utils"

	"github.com/gin-gonic/gin"
)

type AdController struct {
	AdService *services.AdService
}

func NewAdController(adService *services.AdService) *AdController {
	return &AdController{AdService: adService}
}

// GetObjectives lists the campaign objectives in selector order.
func (c *AdController) GetObjectives(ctx *gin.Context) {
	utils.SuccessResponse(ctx, http.StatusOK, "Campaign objectives", models.Objectives)
}

// GenerateStrategy handles the ad form: text fields, objective and optional poster.
func (c *AdController) GenerateStrategy(ctx *gin.Context) {
	var req models.CampaignRequest
	if err := ctx.ShouldBind(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	objective, ok := models.ParseObjective(string(req.Objective))
	if !ok {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid campaign objective")
		return
	}
	req.Objective = objective

	poster, err := readPoster(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	strategy, err := c.AdService.GenerateStrategy(ctx.Request.Context(), req)
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Ad strategy generated", models.AdStrategyResponse{
		Campaign: req,
		Strategy: strategy,
		Poster:   poster,
	})
}

func readPoster(ctx *gin.Context) (*models.Poster, error) {
	fh, err := formFile(ctx, "poster")
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid poster upload")
	}
	if fh == nil {
		return nil, nil
	}
	if !hasExtension(fh.Filename, "jpg", "jpeg", "png", "pdf") {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Poster must be a JPG, PNG or PDF file")
	}

	doc, err := readDocument(fh)
	if err != nil {
		return nil, err
	}
	return &models.Poster{
		Filename:    doc.Name,
		ContentType: http.DetectContentType(doc.Data),
		Size:        int64(len(doc.Data)),
		DataURI:     EncodeDataURI(doc.Data),
	}, nil
}
