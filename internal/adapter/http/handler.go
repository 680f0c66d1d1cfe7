package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"strconv"

	"chronoclicker/internal/app/game"
	"chronoclicker/internal/app/ports"
	"chronoclicker/internal/app/replay"
	"chronoclicker/internal/domain/clicker"
)

type Handler struct {
	Game     *game.Store
	ReplayUC replay.UseCase
	KPI      kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	g := s.Group("/api/game")
	g.GET("/state", h.state)
	g.GET("/export", h.export)
	g.GET("/replay", h.replay)
	g.POST("/click", h.click)
	g.POST("/buy", h.buy)
	g.POST("/equip", h.equip)
	g.POST("/unequip", h.unequip)
	g.POST("/consume", h.consume)
	g.POST("/character", h.character)
	g.POST("/multiplier", h.multiplier)
	g.POST("/save", h.save)
	g.POST("/load", h.load)
	g.POST("/import", h.importSave)
	g.POST("/reset", h.reset)

	s.GET("/ops/kpi", h.kpi)
}

type clickRequest struct {
	ResourceID string `json:"resource_id"`
}

type buyRequest struct {
	GeneratorID string `json:"generator_id"`
}

type equipRequest struct {
	ItemID string `json:"item_id"`
	Slot   string `json:"slot"`
}

type unequipRequest struct {
	Slot string `json:"slot"`
}

type consumeRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type characterRequest struct {
	CharacterID string `json:"character_id"`
}

type multiplierRequest struct {
	Multiplier clicker.Multiplier `json:"multiplier"`
}

type importRequest struct {
	Save json.RawMessage `json:"save"`
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

func (h Handler) state(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Game.State())
}

func (h Handler) click(c context.Context, ctx *app.RequestContext) {
	var body clickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.Game.Click(c, body.ResourceID))
}

func (h Handler) buy(c context.Context, ctx *app.RequestContext) {
	var body buyRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.Game.Buy(c, body.GeneratorID))
}

func (h Handler) equip(c context.Context, ctx *app.RequestContext) {
	var body equipRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.Game.Equip(c, body.ItemID, clicker.SlotID(body.Slot)))
}

func (h Handler) unequip(c context.Context, ctx *app.RequestContext) {
	var body unequipRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.Game.Unequip(c, clicker.SlotID(body.Slot)))
}

func (h Handler) consume(c context.Context, ctx *app.RequestContext) {
	var body consumeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.Game.Consume(c, body.ItemID, body.Quantity))
}

func (h Handler) character(c context.Context, ctx *app.RequestContext) {
	var body characterRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.Game.SwitchCharacter(c, body.CharacterID))
}

func (h Handler) multiplier(c context.Context, ctx *app.RequestContext) {
	var body multiplierRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ctx.JSON(consts.StatusOK, h.Game.SetMultiplier(c, body.Multiplier))
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.SaveGame(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": "saved"})
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	restored := h.Game.LoadGame(c)
	ctx.JSON(consts.StatusOK, map[string]any{
		"restored": restored,
		"state":    h.Game.State(),
	})
}

func (h Handler) export(_ context.Context, ctx *app.RequestContext) {
	payload, err := h.Game.Export()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+game.ExportFilename+`"`)
	ctx.Data(consts.StatusOK, "application/json", payload)
}

func (h Handler) importSave(c context.Context, ctx *app.RequestContext) {
	var body importRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	payload := []byte(body.Save)
	if len(payload) == 0 {
		payload = ctx.Request.Body()
	}
	if err := h.Game.Import(c, payload); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"status": "imported",
		"state":  h.Game.State(),
	})
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	var body resetRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	done := h.Game.Reset(c, confirmValue(body.Confirm))
	ctx.JSON(consts.StatusOK, map[string]any{
		"reset": done,
		"state": h.Game.State(),
	})
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// confirmValue adapts a request flag to the confirmation port.
type confirmValue bool

func (v confirmValue) Confirm(string) bool { return bool(v) }

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrInvalidSave):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_save", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
