package models

const DefaultMesesReserva = 3

// UserParams holds the per-user financial configuration. One row per user.
type UserParams struct {
	UserID         int64  `json:"userId"`
	Caixa          int64  `json:"caixa"` // cash on hand, cents
	NomeUsuario    string `json:"nomeUsuario"`
	MesesReserva   int    `json:"mesesReserva"`
	MetaPatrimonio int64  `json:"metaPatrimonio"`
	TaxaRetorno    int    `json:"taxaRetorno"` // basis points
}

// DefaultUserParams is what applies when a user never saved parameters.
func DefaultUserParams(userID int64) UserParams {
	return UserParams{
		UserID:       userID,
		MesesReserva: DefaultMesesReserva,
	}
}

type UpdateUserParamsRequest struct {
	Caixa          *int64  `json:"caixa"`
	NomeUsuario    *string `json:"nomeUsuario"`
	MesesReserva   *int    `json:"mesesReserva"`
	MetaPatrimonio *int64  `json:"metaPatrimonio"`
	TaxaRetorno    *int    `json:"taxaRetorno"`
}
