package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"novitatravel/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// decodeSettingValue tries a structured (JSON) decode and falls back to
// the raw string. The settings map mixes scalar and structured values.
func decodeSettingValue(raw string) interface{} {
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return raw
	}
	return decoded
}

// encodeSettingValue stores strings verbatim and everything else
// JSON-encoded.
func encodeSettingValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "null", nil
	case float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

// GetSettings returns the company configuration
// @Summary Get settings
// @Description Public key/value map; JSON-encoded values come back decoded
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings [get]
func (h *APIHandler) GetSettings(ctx *gin.Context) {
	settings, err := h.Repository.GetAllSettings()
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	result := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		result[setting.Key] = decodeSettingValue(setting.Value)
	}

	ctx.JSON(http.StatusOK, result)
}

// UpdateSettings upserts the supplied keys
// @Summary Update settings
// @Description Upserts each key of the flat map; keys are written one by one, not atomically
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]interface{} true "Key/value map"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings [put]
func (h *APIHandler) UpdateSettings(ctx *gin.Context) {
	var settings map[string]interface{}
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	for key, value := range settings {
		encoded, err := encodeSettingValue(value)
		if err != nil {
			h.internalError(ctx, err)
			return
		}
		if err := h.Repository.UpsertSetting(key, encoded); err != nil {
			h.internalError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Settings updated successfully"})
}
