package whisperx

// alignModelScript is run with: <language> <device> <result_json> <model_name> <model_dir>.
// Empty model_name/model_dir fall back to WhisperX defaults.
const alignModelScript = `
import json
import sys

import whisperx


def main():
    if len(sys.argv) < 4:
        raise SystemExit("usage: <language> <device> <result_json> [model_name] [model_dir]")
    language, device, result_path = sys.argv[1:4]
    model_name = sys.argv[4] if len(sys.argv) > 4 and sys.argv[4] else None
    model_dir = sys.argv[5] if len(sys.argv) > 5 and sys.argv[5] else None

    _, metadata = whisperx.load_align_model(
        language_code=language,
        device=device,
        model_name=model_name,
        model_dir=model_dir,
    )
    result = {
        "language": metadata.get("language") or language,
        "type": metadata.get("type") or "",
        "dictionary_size": len(metadata.get("dictionary") or {}),
    }
    with open(result_path, "w", encoding="utf-8") as handle:
        json.dump(result, handle)


if __name__ == "__main__":
    main()
`
