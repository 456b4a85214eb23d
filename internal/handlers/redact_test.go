package handlers

import (
	"context"
	"testing"

	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"

	"github.com/stretchr/testify/assert"
)

func opWithCost(cost float64) *models.Operation {
	return &models.Operation{Amount: cost * 2, Cost: &cost}
}

func TestIsAdmin(t *testing.T) {
	admin := context.WithValue(context.Background(), middleware.RoleKey, services.RoleAdmin)
	secretary := context.WithValue(context.Background(), middleware.RoleKey, services.RoleSecretary)

	assert.True(t, isAdmin(admin))
	assert.False(t, isAdmin(secretary))
	assert.False(t, isAdmin(context.Background())) // no role in context
}

func TestRedactOperationCosts(t *testing.T) {
	operations := []*models.Operation{opWithCost(50), opWithCost(0), nil}

	redactOperationCosts(operations)

	assert.Nil(t, operations[0].Cost)
	assert.Nil(t, operations[1].Cost)
	assert.Equal(t, 100.0, operations[0].Amount) // billed amount survives
}

func TestRedactReportCosts(t *testing.T) {
	result := &models.ReportResult{
		Teachers: []models.ReportTeacherRow{
			{Operations: []*models.Operation{opWithCost(75)}},
			{}, // summary row without detail lists
		},
	}

	redactReportCosts(result)

	assert.Nil(t, result.Teachers[0].Operations[0].Cost)
}
