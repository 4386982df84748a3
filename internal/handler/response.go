// Package handler contains the gin handlers of the REST API.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"bizops-dashboard/internal/repository"
	"bizops-dashboard/internal/service"
	"bizops-dashboard/internal/validation"
	"bizops-dashboard/pkg/log"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidData = "Invalid request data"
	msgInternal    = "Internal server error"
)

// badRequest writes 400 {message, errors}. errs falls back to a single
// path-less entry so clients always receive a non-empty list.
func badRequest(c *gin.Context, err error) {
	errs := describe(err)
	c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidData, "errors": errs})
}

func describe(err error) []validation.FieldError {
	if errs := validation.Describe(err); len(errs) > 0 {
		return errs
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := []string{}
		if typeErr.Field != "" {
			path = append(path, typeErr.Field)
		}
		return []validation.FieldError{{
			Path:    path,
			Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type, typeErr.Value),
			Code:    "invalid_type",
		}}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []validation.FieldError{{Path: []string{}, Message: "Malformed JSON body", Code: "invalid_type"}}
	}
	return []validation.FieldError{{Path: []string{}, Message: err.Error(), Code: "custom"}}
}

// respondError maps service and repository errors onto status codes. label
// names the entity in 404 messages.
func respondError(c *gin.Context, err error, label string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": label + " not found"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"message": label + " already exists"})
	case errors.Is(err, service.ErrInvalidLicenseRef):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": msgInvalidData,
			"errors": []validation.FieldError{{
				Path:    []string{"licenseId"},
				Message: "License reference does not resolve",
				Code:    "custom",
			}},
		})
	case errors.Is(err, service.ErrIntegrationDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	default:
		log.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
	}
}

// idParam parses the :id path parameter, writing 400 on failure.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
