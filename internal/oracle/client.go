// Copyright (c) 2025 Orafly Authors. All rights reserved.

package oracle

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/sijms/go-ora/v2"

	"github.com/orafly/orafly/internal/config"
)

const (
	dbDriver   = "oracle"
	dbPoolSize = 2
	dbConnLife = 30 * time.Minute
	dbTimeout  = 5 * time.Second
)

var ErrBadHostname = fmt.Errorf("oracle host is required")

// Client wraps the database handle used to read the Oracle data dictionary.
type Client struct {
	db      *sql.DB
	timeout time.Duration
}

func (c *Client) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

func (c *Client) Close() error {
	if c.db != nil {
		err := c.db.Close()
		c.db = nil
		return err
	}
	return nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Ping() error {
	ctx, cancel := c.context()
	defer cancel()
	return c.db.PingContext(ctx)
}

// NewClient opens a connection pool against the configured Oracle service
// and verifies it with a ping.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OracleHost == "" {
		return nil, ErrBadHostname
	}

	db, err := sql.Open(dbDriver, cfg.GetOracleDSN())
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(dbConnLife)
	db.SetMaxOpenConns(dbPoolSize)
	db.SetMaxIdleConns(dbPoolSize)

	c := &Client{
		db:      db,
		timeout: dbTimeout,
	}

	if err = c.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
