package queries

import (
	"context"
	"database/sql"

	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// GetBusyCouriersQueryHandler retrieves the busy part of the fleet from the
// database. Runs over a plain database/sql connection (lib/pq driver) so the
// read path does not depend on the ORM session used by the write side.
//
// Example:
//
//	handler := NewGetBusyCouriersQueryHandler(db)
//	query := NewGetBusyCouriersQuery()
//
//	busy, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d couriers are out delivering\n", len(busy))
type GetBusyCouriersQueryHandler struct {
	db *sql.DB
}

// NewGetBusyCouriersQueryHandler creates a handler for busy courier queries.
func NewGetBusyCouriersQueryHandler(db *sql.DB) GetBusyCouriersQueryHandler {
	return GetBusyCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all busy couriers.
// Returns courier read models with their transport names, sorted by name.
func (h GetBusyCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetBusyCouriersQuery,
) ([]GetBusyCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetBusyCouriersQueryResponse, 0)

	rows, err := h.db.QueryContext(ctx, `
		SELECT
			c.id,
			c.name,
			t.name,
			c.location_x,
			c.location_y
		FROM couriers c
		JOIN transports t ON t.courier_id = c.id
		WHERE c.status = $1
		ORDER BY c.name
	`, courier.StatusBusy.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetBusyCouriersQueryResponse
		var locationX, locationY int8
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.TransportName,
			&locationX,
			&locationY,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = courierID

		location, locErr := kernel.NewLocation(
			kernel.Coordinate(locationX),
			kernel.Coordinate(locationY),
		)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location
		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
