package main

type Config struct {
	LessonsDir      string `env:"LESSONS_DIR,required=true"`
	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string `env:"LOG_LEVEL,required=true"`
	NumberOfWorkers int    `env:"NUMBER_OF_WORKERS,default=4"`
	LimitReports    *int   `env:"LIMIT_REPORTS"`
	Colours         bool   `env:"COLOURS,default=true"`
}
