package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crmlite/internal/application/dto"
	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/internal/domain"
)

// ReportHandler maneja la identificación y la descarga de paneles.
type ReportHandler struct {
	uc        *report.UseCase
	generator report.PanelGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, generator report.PanelGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, generator: generator}
}

// Identify godoc
// @Summary      Identificar usuario y obtener su panel
// @Description  Resuelve la identificación (admin / cliente / proveedor) y devuelve el panel del rol.
//               Una identificación desconocida devuelve 200 con role "unknown" y el mensaje de error.
//               No existe verificación de contraseña.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      dto.IdentifyRequest  true  "Identificación"
// @Success      200   {object}  dto.PanelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/session/identify [post]
func (h *ReportHandler) Identify(c *fiber.Ctx) error {
	var req dto.IdentifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
		})
	}
	rawID, err := requireIdentification(req.Identification)
	if err != nil {
		return writeError(c, err)
	}

	panel, err := h.uc.Assemble(c.UserContext(), rawID)
	if err != nil {
		logFailure(c, err)
		return writeError(c, err)
	}
	defer panel.Close()

	resp, err := toPanelResponse(panel)
	if err != nil {
		logFailure(c, err)
		return writeError(c, fmt.Errorf("%w: %w", domain.ErrRender, err))
	}
	return c.JSON(resp)
}

// DownloadPDF godoc
// @Summary      Descargar el panel en PDF
// @Description  Arma el panel de la identificación dada y lo devuelve como documento PDF (A4).
// @Tags         reports
// @Produce      application/pdf
// @Param        identification  query  string  true  "Identificación (admin, cliente o proveedor)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	rawID, err := requireIdentification(c.Query("identification"))
	if err != nil {
		return writeError(c, err)
	}

	panel, err := h.uc.Assemble(c.UserContext(), rawID)
	if err != nil {
		logFailure(c, err)
		return writeError(c, err)
	}
	defer panel.Close()

	doc, err := h.generator.Generate(c.UserContext(), panel)
	if err != nil {
		logFailure(c, err)
		return writeError(c, fmt.Errorf("%w: %w", domain.ErrRender, err))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte_%s.pdf"`, panel.Role))
	return c.Send(doc)
}

// requireIdentification rechaza la identificación vacía en la capa HTTP. No se recorta el valor:
// la coincidencia contra el almacén es exacta.
func requireIdentification(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: identification es requerido", domain.ErrInvalidInput)
	}
	return raw, nil
}

func logFailure(c *fiber.Ctx, err error) {
	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("fallo al armar el reporte")
}
