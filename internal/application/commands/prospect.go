package commands

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/prospecting"
)

// ProspectCommand reveals a surface site's resource distribution to an
// organization, using a robonaut-equipped ship docked at the site.
type ProspectCommand struct {
	OrgID          string
	ShipID         string
	SiteLocationID string
	NowS           float64
}

// ProspectResult carries the recorded prospecting outcome.
type ProspectResult struct {
	Result prospecting.Result
}

type ProspectHandler struct {
	Ships prospecting.ShipLookup
	Sites prospecting.SiteLookup
	Repo  prospecting.Repository
}

func NewProspectHandler(ships prospecting.ShipLookup, sites prospecting.SiteLookup, repo prospecting.Repository) *ProspectHandler {
	return &ProspectHandler{Ships: ships, Sites: sites, Repo: repo}
}

func (h *ProspectHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd := request.(ProspectCommand)
	result, err := prospecting.ProspectSite(h.Ships, h.Sites, h.Repo, cmd.OrgID, cmd.ShipID, cmd.SiteLocationID, cmd.NowS)
	if err != nil {
		return nil, err
	}
	return ProspectResult{Result: result}, nil
}
