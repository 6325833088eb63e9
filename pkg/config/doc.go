// Package config parses environment variables into tagged structs with
// github.com/caarlos0/env and caches one value per struct type.
//
// A .env file in the working directory is read once, on first use, through
// github.com/joho/godotenv; variables already set in the process win. Extra
// files can be loaded explicitly with LoadEnv.
//
//	var cfg config.App
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config
