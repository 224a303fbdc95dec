package db

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"nestodo/internal/config"
)

// ConnectDB opens the MySQL pool. Timestamps are read and written in UTC
// and multi statement execution is allowed for schema scripts.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := DSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s@%s/%s: %w", conf.DbUser, conf.DbHost, conf.DbName, err)
	}

	db.SetMaxOpenConns(conf.DbMaxOpenConns)
	db.SetMaxIdleConns(conf.DbMaxOpenConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func DSN(conf *config.Config) (string, error) {
	mc := mysql.NewConfig()
	mc.User = conf.DbUser
	mc.Passwd = conf.DbPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(conf.DbHost, conf.DbPort)
	mc.DBName = conf.DbName
	mc.Loc = time.UTC
	mc.ParseTime = true
	mc.MultiStatements = true

	if conf.DbParams != "" {
		extra, err := url.ParseQuery(conf.DbParams)
		if err != nil {
			return "", fmt.Errorf("invalid MYSQL_PARAMS: %w", err)
		}
		for key, values := range extra {
			switch key {
			case "parseTime", "multiStatements", "loc":
				// fixed above
			default:
				if mc.Params == nil {
					mc.Params = map[string]string{}
				}
				mc.Params[key] = values[0]
			}
		}
	}

	return mc.FormatDSN(), nil
}
