package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urepair/console/internal/model"
)

func (c *Client) ListEquipment(ctx context.Context) ([]model.Equipment, error) {
	var table model.EquipmentTable
	if err := c.do(ctx, "list_equipment", http.MethodGet, "/equipment", nil, &table); err != nil {
		return nil, err
	}
	return table.Equipment, nil
}

func (c *Client) GetEquipment(ctx context.Context, id int) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := c.do(ctx, "get_equipment", http.MethodGet, fmt.Sprintf("/equipment/%d", id), nil, &equipment); err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (c *Client) CreateEquipment(ctx context.Context, equipment *model.Equipment) error {
	return c.do(ctx, "create_equipment", http.MethodPost, "/equipment", equipment, nil)
}

func (c *Client) UpdateEquipment(ctx context.Context, equipment *model.Equipment) error {
	return c.do(ctx, "update_equipment", http.MethodPost, fmt.Sprintf("/equipment/%d", equipment.ID), equipment, nil)
}

func (c *Client) DeleteEquipment(ctx context.Context, id int) error {
	return c.do(ctx, "delete_equipment", http.MethodDelete, fmt.Sprintf("/equipment/%d", id), nil, nil)
}
