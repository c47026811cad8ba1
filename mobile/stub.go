//go:build !mobile

// 桌面构建时 mobile.go 和 embed.go 都被排除，此文件让包仍然可以编译
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}
