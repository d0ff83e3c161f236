package model

type Config struct {
	DatabaseType           string `json:"database_type"`
	DatabaseDir            string `json:"database_dir"`
	DatabaseFile           string `json:"database_file"`
	CatalogFile            string `json:"catalog_file"`
	LogFolder              string `json:"log_folder"`
	CommandLog             string `json:"command_log"`
	ErrorLog               string `json:"error_log"`
	InfoLog                string `json:"info_log"`
	DefaultProfile         string `json:"default_profile"`
	DefaultProfileActive   bool   `json:"default_profile_active"`
	DefaultProfilePassword string `json:"default_profile_password"`
	SnapshotLimit          int    `json:"snapshot_limit"`
}
