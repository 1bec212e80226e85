package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"orgassess/internal/scoring"
	"orgassess/internal/tier"
)

// TierView is the public description of one pricing tier.
type TierView struct {
	Tier             tier.PricingTier          `json:"tier"`
	Label            string                    `json:"label"`
	Normalized       tier.Normalized           `json:"normalized"`
	Rank             int                       `json:"rank"`
	Configuration    *tier.Configuration       `json:"configuration,omitempty"`
	Algorithms       []scoring.Algorithm       `json:"algorithms"`
	OrgChart         tier.OrgChartCapabilities `json:"orgChart"`
	IndustrySections []string                  `json:"industrySections,omitempty"`
}

// TierHandler serves the pricing tier catalogue
type TierHandler struct{}

// NewTierHandler creates a new tier handler
func NewTierHandler() *TierHandler {
	return &TierHandler{}
}

// List handles GET /v1/tiers
//
//	@Summary	List active and legacy tiers
//	@Tags		tiers
//	@Produce	json
//	@Success	200	{array}	TierView
//	@Router		/tiers [get]
func (h *TierHandler) List(w http.ResponseWriter, r *http.Request) {
	views := make([]TierView, 0, len(tier.ActiveTiers)+len(tier.LegacyTiers))
	for _, t := range tier.ActiveTiers {
		views = append(views, viewOf(t, ""))
	}
	for _, t := range tier.LegacyTiers {
		views = append(views, viewOf(t, ""))
	}
	writeJSON(w, http.StatusOK, views)
}

// Get handles GET /v1/tiers/{tier}
//
//	@Summary	Describe one tier, optionally with industry sections
//	@Tags		tiers
//	@Produce	json
//	@Param		tier				path		string	true	"pricing tier"
//	@Param		organizationType	query		string	false	"organization type"
//	@Success	200					{object}	TierView
//	@Failure	404					{object}	map[string]string
//	@Router		/tiers/{tier} [get]
func (h *TierHandler) Get(w http.ResponseWriter, r *http.Request) {
	t := tier.PricingTier(mux.Vars(r)["tier"])
	if !tier.IsKnown(t) {
		writeError(w, http.StatusNotFound, "unknown pricing tier")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(t, r.URL.Query().Get("organizationType")))
}

func viewOf(t tier.PricingTier, organizationType string) TierView {
	view := TierView{
		Tier:       t,
		Label:      tier.DisplayLabel(t),
		Normalized: tier.Normalize(t),
		Rank:       tier.Rank(t),
		Algorithms: tier.AvailableAlgorithms(t),
		OrgChart:   tier.OrgChart(t),
	}
	if cfg, ok := tier.Lookup(t); ok {
		view.Configuration = &cfg
	}
	if organizationType != "" {
		view.IndustrySections = tier.IndustrySections(organizationType, t)
	}
	return view
}
