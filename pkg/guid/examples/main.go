package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"katydid-common-guid/pkg/guid"
	"katydid-common-guid/pkg/guid/snowflake"
)

// 演示两种典型用法：
//  1. 包级默认生成器直接取ID
//  2. 自定义配置的生成器为JWT签发唯一的jti声明
func main() {
	// ========== 用法1：默认生成器 ==========
	id, err := guid.NextID()
	if err != nil {
		panic(err)
	}
	fmt.Println("生成ID:", id.String(), "十六进制:", id.Hex())

	info, err := guid.Parse(id)
	if err != nil {
		panic(err)
	}
	fmt.Printf("解析结果: 时间=%s 数据中心=%d 机器=%d 序列号=%d\n",
		time.UnixMilli(info.Timestamp).Format(time.RFC3339),
		info.DatacenterID, info.WorkerID, info.Sequence)

	// ========== 用法2：Token签发方填充jti ==========
	gen, err := snowflake.New(3, 7)
	if err != nil {
		panic(err)
	}

	jti, err := gen.NextIDString()
	if err != nil {
		panic(err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        jti, // 唯一Token标识
		Subject:   "user-12345",
		Issuer:    "katydid",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	signed, err := token.SignedString([]byte("example-signing-key"))
	if err != nil {
		panic(err)
	}
	fmt.Println("jti:", jti)
	fmt.Println("token:", signed)
}
