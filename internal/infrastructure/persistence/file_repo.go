package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"

	"addressbook/internal/domain"
	"addressbook/internal/domain/entity"
	"addressbook/pkg/errcodes"
	"addressbook/pkg/logx"
)

//nolint:gochecknoglobals // skip
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
	CaseSensitive:          true,
}.Froze()

const filePerm = 0o600

// zstdMagic — первые байты любого zstd-фрейма.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd} //nolint:gochecknoglobals

// FileRepository хранит адресную книгу целиком в одном файле.
type FileRepository struct {
	path     string
	compress bool
}

type Option func(*FileRepository)

// WithCompression включает zstd при сохранении. Load распознаёт сжатые
// файлы сам, поэтому настройку можно менять между запусками.
func WithCompression(enabled bool) Option {
	return func(r *FileRepository) {
		r.compress = enabled
	}
}

func NewFileRepository(path string, opts ...Option) *FileRepository {
	r := &FileRepository{path: path}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *FileRepository) Path() string {
	return r.path
}

// Load читает книгу из файла. Отсутствующий файл — это пустая книга;
// любая другая ошибка возвращается вызывающему.
func (r *FileRepository) Load(ctx context.Context) (*entity.AddressBook, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger(ctx).Info("address book file not found, starting empty", slog.String(logx.FieldBookPath, r.path))
			return entity.NewAddressBook(), nil
		}
		return nil, domain.WrapError(err, errcodes.StorageFailure, "failed to read address book")
	}

	if bytes.HasPrefix(data, zstdMagic) {
		data, err = decompress(data)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.CorruptedSnapshot, "failed to decompress address book")
		}
	}

	var schema snapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, domain.WrapError(err, errcodes.CorruptedSnapshot, "failed to decode address book")
	}

	book, err := schema.toDomain()
	if err != nil {
		return nil, fmt.Errorf("schema.toDomain: %w", err)
	}

	logger(ctx).Info("address book loaded",
		slog.String(logx.FieldBookPath, r.path),
		slog.Int(logx.FieldRecords, book.Len()),
	)

	return book, nil
}

// Save полностью перезаписывает файл текущим содержимым книги.
func (r *FileRepository) Save(ctx context.Context, book *entity.AddressBook) error {
	start := time.Now()

	data, err := json.MarshalIndent(fromAddressBook(book), "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode address book")
	}

	if r.compress {
		data, err = compress(data)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to compress address book")
		}
	}

	if err := writeFileAtomic(r.path, data, filePerm); err != nil {
		return domain.WrapError(err, errcodes.StorageFailure, "failed to write address book")
	}

	logger(ctx).Info("address book saved",
		slog.String(logx.FieldBookPath, r.path),
		slog.Int(logx.FieldRecords, book.Len()),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return nil
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd.NewWriter: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd.NewReader: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd.DecodeAll: %w", err)
	}

	return out, nil
}
