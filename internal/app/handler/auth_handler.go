package handler

import (
	"net/http"
	"time"

	"novitatravel/internal/app/ds"
	"novitatravel/internal/app/dto"
	"novitatravel/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates an admin
// @Summary Admin login
// @Description Verifies email and password and returns a signed JWT valid for 24 hours
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *APIHandler) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Repository.GetUserByEmail(request.Email)
	if err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "novita-travel",
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   role.Role(user.Role),
	})

	accessToken, err := token.SignedString([]byte(h.Config.JWT.Secret))
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: accessToken,
		User: dto.UserPayload{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Verify reports whether the presented token is valid
// @Summary Verify token
// @Description Validates the Bearer token and echoes the identity embedded in it
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.VerifyResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/auth/verify [get]
func (h *APIHandler) Verify(ctx *gin.Context) {
	userID := ctx.GetUint("userID")
	userEmail := ctx.GetString("userEmail")
	userRole, _ := ctx.Get("userRole")
	r, _ := userRole.(role.Role)

	ctx.JSON(http.StatusOK, dto.VerifyResponse{
		Valid: true,
		User: dto.UserPayload{
			ID:    userID,
			Email: userEmail,
			Role:  string(r),
		},
	})
}
