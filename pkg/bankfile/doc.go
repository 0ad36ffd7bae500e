// Package bankfile 从 YAML/JSON 文件加载字符串库。
//
// 文件格式：
//
//	current: 0              # 当前库
//	engine:                 # 可选，覆盖 apris.Settings 中的同名项
//	  control: "%"
//	  global-alt: flip
//	banks:
//	  - ["Hello", "World"]  # 简写：只有字符串列表
//	  - alt: 1
//	    strings: ["red|blue", "%0 %1"]
//	control-map:
//	  100: "[%0]"
//
// "%" 与 "|" 在 YAML 中是指示符，作为标记或字符串开头时需要加引号。
//
// 解析前先对整个文件做 ${VAR} 展开（见 envexp 包），可用 [WithoutEnvExpansion] 关闭。
//
// 基本用法：
//
//	a, err := bankfile.Open("banks.yaml", nil)
//	if err != nil {
//	    return err
//	}
//	text, err := a.ProcessCurrent("%0:1")
package bankfile
