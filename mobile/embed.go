//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// Makefile 中的 build-android 和 build-ios 目标会先运行
// prepare-mobile 把 data/ 复制到此目录。
package mobile

import "embed"

//go:embed data/heart.yaml
var dataFS embed.FS
