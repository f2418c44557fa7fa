package main

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for mdsite\n\n")
	b.WriteString("_mdsite_completions() {\n")
	b.WriteString("    local cur prev cmd i\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"\"\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) cmd=\"${COMP_WORDS[i]}\"; break ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")

	b.WriteString("    if [[ -z \"$cmd\" ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandList(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 && len(cmd.Args) == 0 && !cmd.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		writeBashValueCases(&b, cmd)
		writeBashWords(&b, cmd)
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _mdsite_completions mdsite\n")

	return b.String()
}

// writeBashValueCases completes the value of the flag just typed.
func writeBashValueCases(b *strings.Builder, cmd commandDef) {
	var cases []string
	for _, f := range cmd.Flags {
		if !f.takesValue() {
			continue
		}
		pattern := strings.Join(flagWords(f), "|")
		cases = append(cases, fmt.Sprintf("                %s) %sreturn ;;\n", pattern, bashValueReply(f)))
	}
	if len(cases) == 0 {
		return
	}
	b.WriteString("            case \"$prev\" in\n")
	for _, c := range cases {
		b.WriteString(c)
	}
	b.WriteString("            esac\n")
}

func bashValueReply(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\")); ", strings.Join(f.Values, " "))
	case flagDir:
		return "COMPREPLY=($(compgen -d -- \"$cur\")); "
	case flagFile:
		return "COMPREPLY=(" + bashFileMatches(f.FileGlob) + "); "
	default:
		return ""
	}
}

// bashFileMatches lists directories plus files matching glob, one compgen
// per extension so no extglob is needed.
func bashFileMatches(glob string) string {
	parts := []string{"$(compgen -d -- \"$cur\")"}
	for _, ext := range globExtensions(glob) {
		parts = append(parts, fmt.Sprintf("$(compgen -f -X '!*.%s' -- \"$cur\")", ext))
	}
	return strings.Join(parts, " ")
}

// writeBashWords completes flags, fixed arguments and file arguments.
func writeBashWords(b *strings.Builder, cmd commandDef) {
	flags := strings.Join(allFlagWords(cmd), " ")
	switch {
	case cmd.TakesFiles:
		b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(b, "                COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flags)
		b.WriteString("            else\n")
		fmt.Fprintf(b, "                COMPREPLY=(%s)\n", bashFileMatches(cmd.FilePattern))
		b.WriteString("            fi\n")
	case len(cmd.Args) > 0:
		fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(cmd.Args, " "))
	default:
		fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flags)
	}
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef mdsite\n\n")
	b.WriteString("_mdsite() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, zshEscape(cmd.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'mdsite command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    local cmd=${words[2]}\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")

	b.WriteString("    case $cmd in\n")
	for _, cmd := range cmds {
		specs := zshSpecs(cmd)
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		b.WriteString("            _arguments -s \\\n")
		for i, spec := range specs {
			b.WriteString("                " + spec)
			if i < len(specs)-1 {
				b.WriteString(" \\")
			}
			b.WriteString("\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _mdsite mdsite\n")

	return b.String()
}

func zshSpecs(cmd commandDef) []string {
	specs := make([]string, 0, len(cmd.Flags)+1)
	for _, f := range cmd.Flags {
		specs = append(specs, zshFlagSpec(f))
	}
	switch {
	case cmd.TakesFiles:
		specs = append(specs, fmt.Sprintf(`'*:markdown file:_files -g "%s"'`, zshGlob(cmd.FilePattern)))
	case len(cmd.Args) > 0:
		specs = append(specs, fmt.Sprintf("'1:%s:(%s)'", cmd.Name, strings.Join(cmd.Args, " ")))
	}
	return specs
}

func zshFlagSpec(f flagDef) string {
	desc := zshEscape(f.Desc)
	var spec string
	if f.Short != "" {
		spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]", f.Short, f.Long, f.Short, f.Long, desc)
	} else {
		spec = fmt.Sprintf("'--%s[%s]", f.Long, desc)
	}

	switch f.Type {
	case flagBool:
		return spec + "'"
	case flagEnum:
		return spec + ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")'"
	case flagDir:
		return spec + ":directory:_files -/'"
	case flagFile:
		return spec + `:file:_files -g "` + zshGlob(f.FileGlob) + `"'`
	default:
		return spec + ":" + f.Long + ": '"
	}
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(glob string) string {
	return "*.(" + strings.Join(globExtensions(glob), "|") + ")"
}

var zshReplacer = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)

func zshEscape(s string) string {
	return zshReplacer.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for mdsite\n\n")
	b.WriteString("function __fish_mdsite_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_mdsite_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c mdsite -f\n\n")

	for _, cmd := range cmds {
		fmt.Fprintf(&b, "complete -c mdsite -n __fish_mdsite_needs_command -a %s -d %s\n", cmd.Name, fishQuote(cmd.Desc))
	}

	for _, cmd := range cmds {
		cond := fishQuote("__fish_mdsite_using_command " + cmd.Name)
		if len(cmd.Flags) > 0 || len(cmd.Args) > 0 || cmd.TakesFiles {
			b.WriteString("\n")
		}
		for _, f := range cmd.Flags {
			line := "complete -c mdsite -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long + " -d " + fishQuote(f.Desc) + fishValue(f)
			b.WriteString(line + "\n")
		}
		switch {
		case cmd.TakesFiles:
			fmt.Fprintf(&b, "complete -c mdsite -n %s -k -a %s\n", cond, fishQuote(fishSuffixes(cmd.FilePattern)))
		case len(cmd.Args) > 0:
			fmt.Fprintf(&b, "complete -c mdsite -n %s -a %s\n", cond, fishQuote(strings.Join(cmd.Args, " ")))
		}
	}

	return b.String()
}

func fishValue(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return " -x -a " + fishQuote(strings.Join(f.Values, " "))
	case flagDir:
		return " -x -a '(__fish_complete_directories)'"
	case flagFile:
		return " -x -a " + fishQuote(fishSuffixes(f.FileGlob))
	default:
		return " -x"
	}
}

func fishSuffixes(glob string) string {
	exts := globExtensions(glob)
	for i, ext := range exts {
		exts[i] = "." + ext
	}
	return "(__fish_complete_suffix " + strings.Join(exts, " ") + ")"
}

var fishReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func fishQuote(s string) string {
	return "'" + fishReplacer.Replace(s) + "'"
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# powershell completion for mdsite\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName mdsite -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($wordToComplete -ne '') { $words = @($words | Select-Object -SkipLast 1) }\n\n")

	b.WriteString("    $reply = {\n")
	b.WriteString("        param($values)\n")
	b.WriteString("        $values | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($words.Count -le 1) {\n")
	b.WriteString("        $commands = [ordered]@{\n")
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "            %s = %s\n", psQuote(cmd.Name), psQuote(cmd.Desc))
	}
	b.WriteString("        }\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    $command = $words[1]\n")
	b.WriteString("    $prev = $words[-1]\n\n")

	b.WriteString("    switch ($command) {\n")
	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 && len(cmd.Args) == 0 && !cmd.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "        %s {\n", psQuote(cmd.Name))
		writePowerShellValues(&b, cmd)
		writePowerShellWords(&b, cmd)
		b.WriteString("        }\n")
	}
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.String()
}

// writePowerShellValues completes the value of the flag just typed. Flags
// without fixed values return nothing, which falls back to path completion.
func writePowerShellValues(b *strings.Builder, cmd commandDef) {
	var cases []string
	for _, f := range cmd.Flags {
		if !f.takesValue() {
			continue
		}
		words := flagWords(f)
		for i, w := range words {
			words[i] = psQuote(w)
		}
		action := "return"
		if f.Type == flagEnum {
			action = "& $reply " + psArray(f.Values) + "; return"
		}
		cases = append(cases, fmt.Sprintf("                { $_ -in %s } { %s }\n", strings.Join(words, ", "), action))
	}
	if len(cases) == 0 {
		return
	}
	b.WriteString("            switch ($prev) {\n")
	for _, c := range cases {
		b.WriteString(c)
	}
	b.WriteString("            }\n")
}

func writePowerShellWords(b *strings.Builder, cmd commandDef) {
	switch {
	case cmd.TakesFiles:
		b.WriteString("            if ($wordToComplete -notlike '-*') { return }\n")
		fmt.Fprintf(b, "            & $reply %s\n", psArray(allFlagWords(cmd)))
	case len(cmd.Args) > 0:
		fmt.Fprintf(b, "            & $reply %s\n", psArray(cmd.Args))
	default:
		fmt.Fprintf(b, "            & $reply %s\n", psArray(allFlagWords(cmd)))
	}
}

func psArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = psQuote(v)
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
