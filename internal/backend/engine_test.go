package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, seed, commands string) Config {
	dir := t.TempDir()

	config := Config{
		SeedFile:     filepath.Join(dir, "input.txt"),
		CommandsFile: filepath.Join(dir, "commands.txt"),
		OutputFile:   filepath.Join(dir, "output.txt"),
	}

	if seed != "" {
		require.NoError(t, os.WriteFile(config.SeedFile, []byte(seed), 0o644))
	}
	if commands != "" {
		require.NoError(t, os.WriteFile(config.CommandsFile, []byte(commands), 0o644))
	}

	return config
}

func runEngine(t *testing.T, config Config) (string, *test.Hook) {
	assert := require.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	e, err := Start(logger, config)
	assert.NoError(err)
	assert.NoError(e.RunCommandsFile())
	assert.NoError(e.Close())

	out, err := os.ReadFile(config.OutputFile)
	assert.NoError(err)

	return string(out), hook
}

func TestEngine_Run(t *testing.T) {
	assert := require.New(t)

	seed := "Ada,ada@x.com,4,1,10.12.1815\n" +
		"Linus,linus@x.com,2\n"

	commands := strings.Join([]string{
		`INSERT INTO CUSTOMER ("Smith, John", j@x.com, 1, false, 5.5.2000);`,
		"",
		"   ; just a comment",
		"UPDATE CUSTOMER SET email_verified=false, date=1.1.1970 WHERE id=1;",
		"UPDATE CUSTOMER SET name=Ghost WHERE id=42;",
		"SELECT * FROM CUSTOMER;",
		"DELETE FROM CUSTOMER WHERE id=2;",
		"TRUNCATE TABLE CUSTOMER;",
		"INSERT INTO CUSTOMER (Again)",
	}, "\r\n")

	out, _ := runEngine(t, testConfig(t, seed, commands))

	assert.Equal(strings.Join([]string{
		"Ada,ada@x.com,EMBEDDED_SOFTWARE_ENGINEER,true,10.12.1815",
		"Linus,linus@x.com,FULLSTACK_DEVELOPER,false,00.00.0000",
		"----------",
		"Ada,ada@x.com,EMBEDDED_SOFTWARE_ENGINEER,true,10.12.1815",
		"Linus,linus@x.com,FULLSTACK_DEVELOPER,false,00.00.0000",
		"Smith, John,j@x.com,FRONTEND_DEVELOPER,false,05.05.2000",
		"----------",
		"Ada,ada@x.com,EMBEDDED_SOFTWARE_ENGINEER,false,01.01.1970",
		"Linus,linus@x.com,FULLSTACK_DEVELOPER,false,00.00.0000",
		"Smith, John,j@x.com,FRONTEND_DEVELOPER,false,05.05.2000",
		"----------",
		"error",
		"----------",
		"Ada,ada@x.com,EMBEDDED_SOFTWARE_ENGINEER,false,01.01.1970",
		"Linus,linus@x.com,FULLSTACK_DEVELOPER,false,00.00.0000",
		"Smith, John,j@x.com,FRONTEND_DEVELOPER,false,05.05.2000",
		"----------",
		"Ada,ada@x.com,EMBEDDED_SOFTWARE_ENGINEER,false,01.01.1970",
		"Smith, John,j@x.com,FRONTEND_DEVELOPER,false,05.05.2000",
		"----------",
		"----------",
		"Again,null,BACKEND_DEVELOPER,false,00.00.0000",
		"",
	}, "\n"), out)
}

func TestEngine_Scenario(t *testing.T) {
	assert := require.New(t)

	commands := "INSERT INTO CUSTOMER (Alice, alice@x.com, 0, true, 1.2.1990);\n" +
		"UPDATE CUSTOMER SET job_type=2 WHERE id=1;\n" +
		"DELETE FROM CUSTOMER WHERE id=1;\n" +
		"TRUNCATE TABLE CUSTOMER;\n"

	out, _ := runEngine(t, testConfig(t, "", commands))

	assert.Equal(
		"----------\n"+
			"Alice,alice@x.com,BACKEND_DEVELOPER,true,01.02.1990\n"+
			"----------\n"+
			"Alice,alice@x.com,FULLSTACK_DEVELOPER,true,01.02.1990\n"+
			"----------\n"+
			"----------\n",
		out)
}

func TestEngine_MissingSeed(t *testing.T) {
	assert := require.New(t)

	out, hook := runEngine(t, testConfig(t, "", "INSERT INTO CUSTOMER (a)\n"))

	assert.Equal("----------\na,null,BACKEND_DEVELOPER,false,00.00.0000\n", out)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(warned)
}

func TestEngine_MissingCommands(t *testing.T) {
	assert := require.New(t)

	out, hook := runEngine(t, testConfig(t, "a,b,1,1,1.1.2000\n", ""))

	assert.Equal("a,b,FRONTEND_DEVELOPER,true,01.01.2000\n", out)
	assert.Equal(logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestEngine_OutputNotWritable(t *testing.T) {
	assert := require.New(t)

	config := testConfig(t, "", "")
	config.OutputFile = filepath.Join(filepath.Dir(config.SeedFile), "missing", "output.txt")

	logger, _ := test.NewNullLogger()
	_, err := Start(logger, config)
	assert.Error(err)
}

func TestEngine_OutputTruncated(t *testing.T) {
	assert := require.New(t)

	config := testConfig(t, "", "")
	assert.NoError(os.WriteFile(config.OutputFile, []byte("stale contents\n"), 0o644))

	out, _ := runEngine(t, config)
	assert.Equal("", out)
}

func TestDefaultConfig(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Config{
		SeedFile:     "input.txt",
		CommandsFile: "commands.txt",
		OutputFile:   "output.txt",
	}, DefaultConfig())
}
