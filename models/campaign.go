package models

import "strings"

// Objective is the Facebook campaign objective picked in the ad form.
type Objective string

const (
	ObjectiveAwareness    Objective = "Awareness"
	ObjectiveTraffic      Objective = "Traffic"
	ObjectiveEngagement   Objective = "Engagement"
	ObjectiveLeads        Objective = "Leads"
	ObjectiveAppPromotion Objective = "App Promotion"
	ObjectiveSales        Objective = "Sales"
)

// Objectives lists the selector options in display order; the first is the default.
var Objectives = []Objective{
	ObjectiveAwareness,
	ObjectiveTraffic,
	ObjectiveEngagement,
	ObjectiveLeads,
	ObjectiveAppPromotion,
	ObjectiveSales,
}

// ParseObjective matches case-insensitively. An empty value selects the default.
func ParseObjective(s string) (Objective, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Objectives[0], true
	}
	for _, o := range Objectives {
		if strings.EqualFold(string(o), s) {
			return o, true
		}
	}
	return "", false
}

// CampaignRequest is one submission of the ad strategist form.
type CampaignRequest struct {
	Topic     string    `json:"topic" form:"topic"`
	Company   string    `json:"company" form:"company"`
	Audience  string    `json:"audience" form:"audience"`
	Objective Objective `json:"objective" form:"objective"`
}

// Poster is the optional campaign poster, echoed back for display only.
type Poster struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	DataURI     string `json:"data_uri"`
}

type AdStrategyResponse struct {
	Campaign CampaignRequest `json:"campaign"`
	Strategy string          `json:"strategy"`
	Poster   *Poster         `json:"poster,omitempty"`
}
