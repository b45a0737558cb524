// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package pumps

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marmotedu/newsline/internal/pump/analytics"
	"github.com/marmotedu/newsline/pkg/log"
)

// MySQLPump defines a mysql pump with mysql specific options and common options.
type MySQLPump struct {
	db      *gorm.DB
	sqlConf *MySQLConf
	CommonPumpConfig
}

// MySQLConf defines mysql specific options.
type MySQLConf struct {
	// DSN of the mysql database, like `user:pass@tcp(127.0.0.1:3306)/newsline_analytics?charset=utf8mb4&parseTime=true`
	DSN string `mapstructure:"dsn"`
	// TableName of the table view records are written to, defaults to `view_analytics`
	TableName string `mapstructure:"table_name"`
	BatchSize int    `mapstructure:"batch_size"`
}

type viewRecordRow struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	TimeStamp int64  `gorm:"column:timestamp"`
	Slug      string `gorm:"column:slug"`
	ClientID  string `gorm:"column:clientId"`
	Counted   bool   `gorm:"column:counted"`
}

// New create a mysql pump instance.
func (m *MySQLPump) New() Pump {
	newPump := MySQLPump{}

	return &newPump
}

// GetName returns the mysql pump name.
func (m *MySQLPump) GetName() string {
	return "MySQL Pump"
}

// Init initialize the mysql pump instance.
func (m *MySQLPump) Init(conf interface{}) error {
	m.sqlConf = &MySQLConf{}
	if err := mapstructure.Decode(conf, &m.sqlConf); err != nil {
		log.Fatalf("Failed to decode configuration: %s", err.Error())
	}

	if m.sqlConf.TableName == "" {
		m.sqlConf.TableName = "view_analytics"
	}
	if m.sqlConf.BatchSize <= 0 {
		m.sqlConf.BatchSize = 500
	}

	db, err := gorm.Open(mysql.Open(m.sqlConf.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	m.db = db

	if err := m.db.Table(m.sqlConf.TableName).AutoMigrate(&viewRecordRow{}); err != nil {
		return err
	}

	log.Debug("MySQL Initialized")

	return nil
}

// WriteData batch insert view records into the configured table.
func (m *MySQLPump) WriteData(ctx context.Context, data []interface{}) error {
	rows := make([]viewRecordRow, 0, len(data))
	for _, v := range data {
		decoded, ok := v.(analytics.AnalyticsRecord)
		if !ok {
			continue
		}

		rows = append(rows, viewRecordRow{
			TimeStamp: decoded.TimeStamp,
			Slug:      decoded.Slug,
			ClientID:  decoded.ClientID,
			Counted:   decoded.Counted,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	if err := m.db.WithContext(ctx).
		Table(m.sqlConf.TableName).
		CreateInBatches(rows, m.sqlConf.BatchSize).Error; err != nil {
		return err
	}

	log.Infof("Purged %d records...", len(rows))

	return nil
}
