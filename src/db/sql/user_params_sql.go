package db

import (
	"context"
	"errors"

	"financezenn-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userParamsColumns = `user_id, caixa, nome_usuario, meses_reserva, meta_patrimonio, taxa_retorno`

func scanUserParams(row pgx.Row) (*models.UserParams, error) {
	var p models.UserParams
	err := row.Scan(&p.UserID, &p.Caixa, &p.NomeUsuario, &p.MesesReserva, &p.MetaPatrimonio, &p.TaxaRetorno)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetUserParams returns nil, nil when the user has no row yet.
func GetUserParams(ctx context.Context, pool *pgxpool.Pool, userID int64) (*models.UserParams, error) {
	query := `SELECT ` + userParamsColumns + ` FROM user_params WHERE user_id = $1`
	p, err := scanUserParams(pool.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// UpsertUserParams inserts with defaults for missing fields or merges the
// provided fields into the existing row.
func UpsertUserParams(ctx context.Context, pool *pgxpool.Pool, userID int64, req models.UpdateUserParamsRequest) (*models.UserParams, error) {
	query := `
		INSERT INTO user_params (user_id, caixa, nome_usuario, meses_reserva, meta_patrimonio, taxa_retorno)
		VALUES (
			$1,
			COALESCE($2::bigint, 0),
			COALESCE($3::text, ''),
			COALESCE($4::integer, $7::integer),
			COALESCE($5::bigint, 0),
			COALESCE($6::integer, 0)
		)
		ON CONFLICT (user_id) DO UPDATE
		SET caixa = COALESCE($2::bigint, user_params.caixa),
			nome_usuario = COALESCE($3::text, user_params.nome_usuario),
			meses_reserva = COALESCE($4::integer, user_params.meses_reserva),
			meta_patrimonio = COALESCE($5::bigint, user_params.meta_patrimonio),
			taxa_retorno = COALESCE($6::integer, user_params.taxa_retorno),
			updated_at = NOW()
		RETURNING ` + userParamsColumns
	return scanUserParams(pool.QueryRow(ctx, query,
		userID, req.Caixa, req.NomeUsuario, req.MesesReserva, req.MetaPatrimonio, req.TaxaRetorno,
		models.DefaultMesesReserva))
}
