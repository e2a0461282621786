package handlers

import (
	"fitconsole/api/dto"
	resourceservice "fitconsole/api/services/resource"
	"fitconsole/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MemberHandler is the handler for the member endpoints.
type MemberHandler struct {
	resourceService *resourceservice.ResourceService
	logger          logger.Interface
}

type MemberHandlerDependencies struct {
	ResourceService *resourceservice.ResourceService
	Logger          logger.Interface
}

// NewMemberHandler creates a new instance of the member handler.
func NewMemberHandler(deps *MemberHandlerDependencies) *MemberHandler {
	return &MemberHandler{
		resourceService: deps.ResourceService,
		logger:          orNop(deps.Logger),
	}
}

// ListMembers returns every member.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.resourceService.ListMembers(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MembersResponse{Success: true, Members: members})
}

// CreateMember registers a new member.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var input dto.MemberInput
	if !bindJSON(c, h.logger, &input) {
		return
	}

	member, err := h.resourceService.CreateMember(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MemberResponse{Success: true, Member: *member})
}
