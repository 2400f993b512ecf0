package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdeepak1/cms/db"
)

type ListPagesRequest struct {
	PageID   int32 `form:"page_id,default=1" binding:"min=1"`
	PageSize int32 `form:"page_size,default=20" binding:"min=1,max=100"`
}

type ListPagesResponse struct {
	Pages []db.Page `json:"pages"`
}

func (s *Service) listPages(ctx *gin.Context) {
	var req ListPagesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	arg := db.ListPagesParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	}

	pages, err := s.store.ListPages(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if pages == nil {
		pages = []db.Page{}
	}

	ctx.JSON(http.StatusOK, ListPagesResponse{Pages: pages})
}
