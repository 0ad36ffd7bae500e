// Package envexp 提供配置文件与字符串库文件的 ${...} 变量展开。
//
// 仅处理 ${...} 语法（不解析 $VAR），在 YAML/JSON 解析之前对原始文本执行，
// 不执行命令、不引入模板引擎。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 快速开始
//
//	content := `greeting: "${GREETING:-Hello}"`
//	expanded, err := envexp.ExpandEnv(content)
//
// 使用自定义变量来源：
//
//	vars := map[string]string{"NAME": "world"}
//	out, err := envexp.Expand("hi ${NAME}", func(k string) (string, bool) {
//	    v, ok := vars[k]
//	    return v, ok
//	})
package envexp
