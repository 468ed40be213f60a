package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"

	"github.com/lgbarn/sanmove-go/internal/config"
	"github.com/lgbarn/sanmove-go/internal/movetext"
	"github.com/lgbarn/sanmove-go/internal/output"
	"github.com/lgbarn/sanmove-go/internal/worker"
	"github.com/lgbarn/sanmove-go/san"
)

type handlers struct {
	cfg *config.Config
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"shapes": len(san.Shapes()),
	})
}

// body returns the request body as a gjson result, rejecting invalid JSON.
func body(c *fiber.Ctx) (gjson.Result, error) {
	raw := c.Body()
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fiber.NewError(fiber.StatusBadRequest, "request body is not valid JSON")
	}
	return gjson.ParseBytes(raw), nil
}

// parse decodes {"text": "..."} into a JSON move.
func (h *handlers) parse(c *fiber.Ctx) error {
	req, err := body(c)
	if err != nil {
		return err
	}
	text := req.Get("text")
	if text.Type != gjson.String {
		return fiber.NewError(fiber.StatusBadRequest, `"text" must be a string`)
	}

	m, err := san.Parse(text.Str)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(output.ErrorToJSON(text.Str, err))
	}
	return c.JSON(output.MoveToJSON(text.Str, m))
}

// compile renders a JSON move as canonical SAN.
func (h *handlers) compile(c *fiber.Ctx) error {
	req, err := body(c)
	if err != nil {
		return err
	}
	if !req.IsObject() {
		return fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object")
	}

	jm := &output.JSONMove{
		Kind:       req.Get("kind").String(),
		Castle:     req.Get("castle").String(),
		Piece:      req.Get("piece").String(),
		From:       req.Get("from").String(),
		To:         req.Get("to").String(),
		Capture:    req.Get("capture").Bool(),
		Promotion:  req.Get("promotion").String(),
		Check:      req.Get("check").String(),
		Annotation: req.Get("annotation").String(),
	}
	m, err := output.MoveFromJSON(jm)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(output.ErrorToJSON("", err))
	}

	result := output.MoveToJSON("", m)
	if result.Error != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	return c.JSON(result)
}

// batch decodes {"moves": ["e4", ...]} in input order.
func (h *handlers) batch(c *fiber.Ctx) error {
	req, err := body(c)
	if err != nil {
		return err
	}
	moves := req.Get("moves")
	if !moves.IsArray() {
		return fiber.NewError(fiber.StatusBadRequest, `"moves" must be an array`)
	}

	items := moves.Array()
	if len(items) > h.cfg.Server.MaxBatch {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch of %d moves exceeds limit of %d", len(items), h.cfg.Server.MaxBatch))
	}

	tokens := make([]movetext.Token, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("moves[%d] must be a string", i))
		}
		tokens[i] = movetext.Token{Text: item.Str}
	}

	out := &output.JSONOutput{Moves: make([]*output.JSONMove, 0, len(tokens))}
	failed := 0
	for _, res := range worker.DecodeAll(tokens, h.cfg.Workers) {
		if res.Err != nil {
			failed++
			out.Moves = append(out.Moves, output.ErrorToJSON(res.Token.Text, res.Err))
			continue
		}
		out.Moves = append(out.Moves, output.MoveToJSON(res.Token.Text, res.Move))
	}
	c.Set("X-Failed-Moves", fmt.Sprint(failed))
	return c.JSON(out)
}
