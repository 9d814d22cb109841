package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/limbo/cookstreak/pkg/entity"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(cfg DBConfig) *BadgesRepository {
	return &BadgesRepository{
		conn: Connect(cfg),
	}
}

func NewBadgesRepoWithConn(conn PgConnection) *BadgesRepository {
	mustPing(conn, "badgesRepo")
	return &BadgesRepository{
		conn: conn,
	}
}

func (br *BadgesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Badge, error) {
	rows, err := br.conn.Query(ctx, `SELECT id, user_id, badge_type, earned_at FROM badges WHERE user_id = $1 ORDER BY earned_at;`, uid)
	if err != nil {
		return nil, errors.New("getting badges error: " + err.Error())
	}
	defer rows.Close()
	badges := make([]entity.Badge, 0)
	for rows.Next() {
		var b entity.Badge
		var badgeType string
		if err = rows.Scan(&b.ID, &b.UserID, &badgeType, &b.EarnedAt); err != nil {
			return nil, errors.New("badge row parsing error: " + err.Error())
		}
		b.BadgeType = entity.BadgeType(badgeType)
		badges = append(badges, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected badge rows error: " + err.Error())
	}
	return badges, nil
}
