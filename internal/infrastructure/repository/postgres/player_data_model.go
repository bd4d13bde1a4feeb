package postgres

const playerDataTable = "player_data"

// playerDataRowModel is both the insert model and the source of the table DDL.
type playerDataRowModel struct {
	Team        string  `db:"team" sqltype:"TEXT"`
	PlayerName  *string `db:"player_name" sqltype:"TEXT"`
	URL         *string `db:"url" sqltype:"TEXT"`
	Nationality string  `db:"nationality" sqltype:"TEXT"`
	Position    *string `db:"position" sqltype:"TEXT"`
	Age         *string `db:"age" sqltype:"TEXT"`
	Games       *int64  `db:"games" sqltype:"INT"`
}
