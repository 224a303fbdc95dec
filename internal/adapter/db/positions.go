package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"nestodo/internal/core/sequencer"
)

// positionUpdate builds one UPDATE writing every assignment:
//
//	UPDATE tasks SET position = CASE id WHEN ? THEN ? ... END, task_list_id = ? WHERE id IN (...)
//
// parentColumn is optional; when set every row is re-parented to parentID.
func positionUpdate(table, parentColumn string, parentID uint64, assignments []sequencer.Assignment) (string, []interface{}, error) {
	positions := sq.Case("id")
	ids := make([]uint64, 0, len(assignments))
	for _, a := range assignments {
		positions = positions.When(sq.Expr("?", a.ID), sq.Expr("?", a.Position))
		ids = append(ids, a.ID)
	}

	update := sq.Update(table).
		Set("position", positions).
		Where(sq.Eq{"id": ids})
	if parentColumn != "" {
		update = update.Set(parentColumn, parentID)
	}
	return update.ToSql()
}

func applyPositions(ctx context.Context, exec executor, table, parentColumn string, parentID uint64, assignments []sequencer.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	query, args, err := positionUpdate(table, parentColumn, parentID, assignments)
	if err != nil {
		return fmt.Errorf("build %s position update: %w", table, err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("apply %s positions: %w", table, err)
	}
	return nil
}

// listPositions reads the {id, position} projection of a sibling set ordered
// by position. Inside a transaction the rows are locked.
func listPositions(ctx context.Context, exec executor, table, parentColumn string, parentID uint64) ([]sequencer.Item, error) {
	query := lockingRead(ctx, fmt.Sprintf(
		"SELECT id, position FROM %s WHERE %s = ? ORDER BY position, id",
		table, parentColumn,
	))

	var rows []positionRow
	if err := exec.SelectContext(ctx, &rows, query, parentID); err != nil {
		return nil, fmt.Errorf("list %s positions: %w", table, err)
	}

	items := make([]sequencer.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, sequencer.Item{ID: row.ID, Position: row.Position})
	}
	return items, nil
}

type positionRow struct {
	ID       uint64 `db:"id"`
	Position int    `db:"position"`
}
