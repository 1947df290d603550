package x12adapter

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/edi/pkg/utils"
)

const isaTemplate = "ISA*00*          *00*          *ZZ*SENDERID       *ZZ*RECEIVERID     *240115*1230*^*00501*%s*0*P*:~"

func interchange(control string) string {
	isa := strings.Replace(isaTemplate, "%s", control, 1)
	return isa + "\nGS*HP*SENDER*RECEIVER*20240115*1230*1*X*005010X221A1~\nST*835*0001~\nBPR*I*10*C*CHK~\nSE*3*0001~\nGE*1*1~\nIEA*1*" + control + "~\n"
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.x12")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func drain(t *testing.T, fs *FileSource) []utils.Record {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, fs.Setup(ctx))
	defer fs.Close()
	ch, err := fs.Extract(ctx)
	require.NoError(t, err)
	var out []utils.Record
	for rec := range ch {
		out = append(out, rec)
	}
	return out
}

func TestFileSourceSplitsInterchanges(t *testing.T) {
	path := writeFile(t, interchange("000000001")+"\n"+interchange("000000002"))
	records := drain(t, NewFileSource(path))
	require.Len(t, records, 2)

	assert.Equal(t, "000000001", records[0][FieldControlNumber])
	assert.Equal(t, "SENDERID", records[0][FieldSenderID])
	assert.Equal(t, 2, records[1][FieldSequence])
	assert.Equal(t, path, records[1][FieldSourcePath])

	raw := records[1][FieldRawMessage].(string)
	assert.True(t, strings.HasPrefix(raw, "ISA*"))
	assert.True(t, strings.HasSuffix(raw, "IEA*1*000000002~"))
}

func TestFileSourceDedup(t *testing.T) {
	content := interchange("000000001") + interchange("000000002") + interchange("000000001")

	records := drain(t, NewFileSource(writeFile(t, content), WithDedup(10)))
	require.Len(t, records, 2)
	assert.Equal(t, "000000002", records[1][FieldControlNumber])

	assert.Len(t, drain(t, NewFileSource(writeFile(t, content))), 3)
}

func TestFileSourceSetupErrors(t *testing.T) {
	assert.Error(t, NewFileSource("").Setup(context.Background()))
	assert.Error(t, NewFileSource(filepath.Join(t.TempDir(), "missing.x12")).Setup(context.Background()))
}

func TestFileSourceStopsOnCancel(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString(interchange("000000001"))
	}
	fs := NewFileSource(writeFile(t, b.String()))
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, fs.Setup(ctx))
	ch, err := fs.Extract(ctx)
	require.NoError(t, err)

	<-ch
	cancel()
	count := 0
	for range ch {
		count++
	}
	assert.Less(t, count, 49)
}

func TestSplitInterchangesTrailingPartial(t *testing.T) {
	data := []byte("junk " + interchange("000000001") + "ISA*00")
	advance, token, err := splitInterchanges(data, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(token), "ISA*00*"))
	assert.True(t, strings.HasSuffix(string(token), "000000001~"))

	advance2, token2, err := splitInterchanges(data[advance:], false)
	require.NoError(t, err)
	assert.Equal(t, 1, advance2, "drops the newline before the pending ISA")
	assert.Nil(t, token2)

	_, token3, err := splitInterchanges(data[advance+advance2:], true)
	require.NoError(t, err)
	assert.Equal(t, "ISA*00", string(token3))
}

func TestSplitInterchangesDiscardsLeadingJunk(t *testing.T) {
	advance, token, err := splitInterchanges([]byte("junk before the IS"), false)
	require.NoError(t, err)
	assert.Nil(t, token)
	assert.Equal(t, len("junk before the "), advance, "keeps a possible partial ISA")

	junk := strings.Repeat("x", 4096)
	scanner := bufio.NewScanner(strings.NewReader(junk + interchange("000000007")))
	scanner.Buffer(make([]byte, 0, 64), 1024)
	scanner.Split(splitInterchanges)
	require.True(t, scanner.Scan(), "scan error: %v", scanner.Err())
	assert.True(t, strings.HasPrefix(scanner.Text(), "ISA*00*"))
	assert.True(t, strings.HasSuffix(scanner.Text(), "IEA*1*000000007~"))
}

func TestSeenIndex(t *testing.T) {
	idx, err := newSeenIndex(2)
	require.NoError(t, err)
	defer idx.Close()

	assert.False(t, idx.Seen("a"))
	assert.True(t, idx.Seen("a"))
	assert.False(t, idx.Seen("b"))
	assert.True(t, idx.Seen("b"))

	idx.Seen("c")
	kept := 0
	for _, key := range []string{"a", "b", "c"} {
		if _, ok := idx.cache.Get(key); ok {
			kept++
		}
	}
	assert.LessOrEqual(t, kept, 2, "the index holds at most max keys")
}
