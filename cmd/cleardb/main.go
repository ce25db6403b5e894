package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"user-sync-server/bootstrap"
	"user-sync-server/domain/entity"

	"gorm.io/gorm"
)

func main() {
	// 命令行参数
	force := flag.Bool("force", false, "跳过确认提示，强制执行清库")
	truncate := flag.Bool("truncate", false, "使用 TRUNCATE（更快，会重置自增ID，仅 PostgreSQL）")
	flag.Parse()

	// 加载环境变量（.env 或系统环境变量）
	env, err := bootstrap.LoadEnv()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// 连接数据库
	db, err := bootstrap.NewDatabase(env.DatabaseConfig())
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	tableName, err := userTableName(db)
	if err != nil {
		log.Fatalf("❌ 解析表名失败: %v", err)
	}

	// 确认提示
	if !*force {
		fmt.Println("⚠️  警告：此操作将删除所有已同步的 Clerk 用户！")
		fmt.Printf("📊 受影响的表：%s\n", tableName)

		fmt.Print("\n确认执行清库操作？(yes/no): ")
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))

		if input != "yes" && input != "y" {
			fmt.Println("❌ 操作已取消")
			return
		}
	}

	fmt.Println("\n🚀 开始清库...")

	if err := clearTable(db, tableName, *truncate); err != nil {
		log.Fatalf("❌ 清空表 %s 失败: %v", tableName, err)
	}

	log.Printf("✅ 已清空表: %s", tableName)
}

// userTableName 通过 GORM schema 解析得到用户表名，避免硬编码
func userTableName(db *gorm.DB) (string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&entity.User{}); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}

// clearTable 清空表
// TRUNCATE 更快并重置自增ID；DELETE 可以触发触发器，但较慢
func clearTable(db *gorm.DB, tableName string, truncate bool) error {
	if truncate && db.Dialector.Name() == "postgres" {
		return db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", tableName)).Error
	}
	return db.Exec(fmt.Sprintf("DELETE FROM %s", tableName)).Error
}
